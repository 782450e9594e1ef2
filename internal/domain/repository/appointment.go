package repository

import (
	"context"

	"github.com/passtrack/passboard/internal/domain/model"
)

// AppointmentRepository describes read-only access to appointments.
type AppointmentRepository interface {
	Count(ctx context.Context, f Filter) (int64, error)
	Latest(ctx context.Context) (*model.Appointment, error)
	CountsByOffice(ctx context.Context, f Filter) ([]model.OfficeCount, error)
}
