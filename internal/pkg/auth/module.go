package auth

import (
	"github.com/passtrack/passboard/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newSecretComparer),
	fx.Provide(newTokenStrategy),
)

func newSecretComparer() SecretComparer {
	return NewAdminSecretComparer()
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
}
