package repository

import (
	"context"
	"time"

	"github.com/passtrack/passboard/internal/domain/model"
)

// OrderRepository describes persistence operations with payment orders.
type OrderRepository interface {
	Count(ctx context.Context, f Filter) (int64, error)
	CountByStatuses(ctx context.Context, f Filter, statuses []model.PaymentStatus) (int64, error)
	List(ctx context.Context, f Filter, page Page) ([]model.Order, error)
	Latest(ctx context.Context) (*model.Order, error)
	// SelectStalePending returns orders still Pending that were created
	// before the cutoff, oldest first.
	SelectStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error
	CountsByUsername(ctx context.Context, f Filter) ([]model.UsernameCount, error)
}
