package usecase

import (
	"context"

	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// OrderUseCase exposes order read operations for the dashboard.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// List returns one page of orders matching the filter together with the
// total match count.
func (u *OrderUseCase) List(ctx context.Context, f repository.Filter, page repository.Page) ([]model.Order, int64, error) {
	if page.Number <= 0 {
		page.Number = 1
	}
	if page.Size <= 0 {
		page.Size = defaultPageSize
	}
	if page.Size > maxPageSize {
		page.Size = maxPageSize
	}

	total, err := u.orders.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	orders, err := u.orders.List(ctx, f, page)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// CountsByUsername returns per-username order counts, busiest first.
func (u *OrderUseCase) CountsByUsername(ctx context.Context, f repository.Filter) ([]model.UsernameCount, error) {
	return u.orders.CountsByUsername(ctx, f)
}
