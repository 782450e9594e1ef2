package oracle

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/passtrack/passboard/internal/config"
)

// Module exposes the status probe implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.OracleAddress, p.Config.OracleOrigin, p.Logger)
}
