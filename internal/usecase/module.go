package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/passtrack/passboard/internal/config"
	"github.com/passtrack/passboard/internal/domain/repository"
	pkgAuth "github.com/passtrack/passboard/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	NewAppointmentUseCase,
	NewStatsUseCase,
	NewUpdatesUseCase,
	newAuthUseCase,
	newReconcileUseCase,
)

type authParams struct {
	fx.In

	Config   *config.Config
	Comparer pkgAuth.SecretComparer
	Tokens   pkgAuth.Strategy
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Config.AdminUsername, p.Config.AdminPassword, p.Comparer, p.Tokens)
}

type reconcileParams struct {
	fx.In

	Config *config.Config
	Orders repository.OrderRepository
	Probe  StatusProbe
	Logger *slog.Logger
}

func newReconcileUseCase(p reconcileParams) *ReconcileUseCase {
	return NewReconcileUseCase(p.Orders, p.Probe, p.Config.StaleAfter, p.Config.StaleBatchSize, p.Config.WorkerPoolSize, p.Logger)
}
