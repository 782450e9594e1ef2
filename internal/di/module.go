package di

import (
	"go.uber.org/fx"

	"github.com/passtrack/passboard/internal/adapter/oracle"
	"github.com/passtrack/passboard/internal/app"
	"github.com/passtrack/passboard/internal/config"
	"github.com/passtrack/passboard/internal/logger"
	"github.com/passtrack/passboard/internal/pkg/auth"
	"github.com/passtrack/passboard/internal/server/http/handlers"
	"github.com/passtrack/passboard/internal/server/http/router"
	"github.com/passtrack/passboard/internal/storage/postgres"
	"github.com/passtrack/passboard/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		oracle.Module,
		fx.Provide(func(client oracle.Client) usecase.StatusProbe { return client }),
		usecase.Module,
		fx.Provide(func(f *app.DashboardFacade) handlers.DashboardFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
