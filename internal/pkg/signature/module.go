package signature

import (
	"github.com/bengalbay/payserver/internal/config"
	"go.uber.org/fx"
)

// Module provides the signature verifier via fx.
var Module = fx.Provide(newVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newVerifier(p verifierParams) *Verifier {
	return NewVerifier(p.Config.RazorpayKeySecret)
}
