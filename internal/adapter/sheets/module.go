package sheets

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/bengalbay/payserver/internal/config"
)

// Module exposes the ledger implementation to the fx graph.
var Module = fx.Provide(newLedger)

type ledgerParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newLedger(p ledgerParams) Ledger {
	if !p.Config.LedgerConfigured() {
		p.Logger.Info("ledger credentials not configured, order log disabled")
		return NewSheetLedger(nil, p.Config.LedgerTimeout, p.Logger)
	}

	store, err := newGoogleRowStore(p.Ctx, p.Config)
	if err != nil {
		// The ledger is best-effort: a broken client keeps the service up
		// with the feature off.
		p.Logger.Warn("ledger client construction failed, order log disabled", slog.String("error", err.Error()))
		return NewSheetLedger(nil, p.Config.LedgerTimeout, p.Logger)
	}

	return NewSheetLedger(store, p.Config.LedgerTimeout, p.Logger)
}
