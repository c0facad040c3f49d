package di

import (
	"go.uber.org/fx"

	"github.com/bengalbay/payserver/internal/adapter/razorpay"
	"github.com/bengalbay/payserver/internal/adapter/sheets"
	"github.com/bengalbay/payserver/internal/app"
	"github.com/bengalbay/payserver/internal/config"
	"github.com/bengalbay/payserver/internal/logger"
	"github.com/bengalbay/payserver/internal/pkg/signature"
	"github.com/bengalbay/payserver/internal/server/http/handlers"
	"github.com/bengalbay/payserver/internal/server/http/router"
	"github.com/bengalbay/payserver/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		signature.Module,
		razorpay.Module,
		sheets.Module,
		usecase.Module,
		fx.Provide(func(facade *app.GatewayFacade) handlers.GatewayFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
