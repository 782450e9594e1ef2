package handlers

import (
	"context"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(username, password string) (string, error)
	ValidateSession(token string) error
}

// OrderFacade encapsulates order listing exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, filter repository.Filter, page repository.Page) ([]model.Order, int64, error)
}

// StatsFacade provides aggregate counts.
type StatsFacade interface {
	Stats(ctx context.Context, filter repository.Filter) (*model.StatsSummary, error)
}

// ChartsFacade provides grouped counts for charts and the username listing.
type ChartsFacade interface {
	AppointmentsByOffice(ctx context.Context, filter repository.Filter) ([]model.OfficeCount, error)
	OrdersByUsername(ctx context.Context, filter repository.Filter) ([]model.UsernameCount, error)
}

// UpdatesFacade runs the polling pass.
type UpdatesFacade interface {
	PollUpdates(ctx context.Context) (*model.UpdateReport, error)
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	AuthFacade
	OrderFacade
	StatsFacade
	ChartsFacade
	UpdatesFacade
}
