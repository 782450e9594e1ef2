package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/passtrack/passboard/internal/domain/errors"
	"github.com/passtrack/passboard/internal/domain/model"
	"github.com/passtrack/passboard/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage, kept as an
// interface so pgxmock can stand in during tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type appointmentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Appointments() repository.AppointmentRepository {
	return &appointmentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS appointments (
            id SERIAL PRIMARY KEY,
            office_name TEXT,
            appointment_id BIGINT,
            date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            username TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            full_name TEXT,
            office_name TEXT,
            trace_number TEXT UNIQUE,
            date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            payment_status TEXT NOT NULL DEFAULT 'Pending',
            username TEXT
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status_date ON orders(payment_status, date)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_username ON orders(username)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// filterClause renders a Filter into a WHERE fragment with positional args.
// The search condition is included only when withSearch is set, since only
// orders expose text search.
func filterClause(f repository.Filter, withSearch bool) (string, []any) {
	var (
		conds []string
		args  []any
	)

	add := func(expr string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.From != nil {
		add("date >= $%d", *f.From)
	}
	if f.To != nil {
		add("date <= $%d", *f.To)
	}
	if f.Username != "" {
		add("username = $%d", f.Username)
	}
	if withSearch && f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(full_name ILIKE $%d OR trace_number ILIKE $%d)", n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// --- OrderRepository implementation ---

const orderColumns = `id, COALESCE(full_name, ''), COALESCE(office_name, ''),
       COALESCE(trace_number, ''), date, payment_status, COALESCE(username, '')`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.FullName, &o.OfficeName, &o.TraceNumber, &o.CreatedAt, &o.PaymentStatus, &o.Username)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Count(ctx context.Context, f repository.Filter) (int64, error) {
	where, args := filterClause(f, true)
	var count int64
	err := r.storage.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) CountByStatuses(ctx context.Context, f repository.Filter, statuses []model.PaymentStatus) (int64, error) {
	where, args := filterClause(f, true)

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	args = append(args, values)
	cond := fmt.Sprintf("payment_status = ANY($%d)", len(args))
	if where == "" {
		where = " WHERE " + cond
	} else {
		where += " AND " + cond
	}

	var count int64
	err := r.storage.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) List(ctx context.Context, f repository.Filter, page repository.Page) ([]model.Order, error) {
	where, args := filterClause(f, true)
	args = append(args, page.Size, page.Offset())
	query := fmt.Sprintf("SELECT %s FROM orders%s ORDER BY date DESC LIMIT $%d OFFSET $%d",
		orderColumns, where, len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Latest(ctx context.Context) (*model.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders ORDER BY id DESC LIMIT 1", orderColumns)
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) SelectStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders
                   WHERE payment_status = $1 AND date < $2
                   ORDER BY date
                   LIMIT $3`, orderColumns)

	rows, err := r.storage.pool.Query(ctx, query, model.PaymentStatusPending, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET payment_status=$1 WHERE id=$2`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) CountsByUsername(ctx context.Context, f repository.Filter) ([]model.UsernameCount, error) {
	where, args := filterClause(f, false)
	cond := "username IS NOT NULL"
	if where == "" {
		where = " WHERE " + cond
	} else {
		where += " AND " + cond
	}
	query := "SELECT username, COUNT(*) FROM orders" + where +
		" GROUP BY username ORDER BY COUNT(*) DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.UsernameCount
	for rows.Next() {
		var uc model.UsernameCount
		if err := rows.Scan(&uc.Username, &uc.Count); err != nil {
			return nil, err
		}
		result = append(result, uc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- AppointmentRepository implementation ---

const appointmentColumns = `id, COALESCE(office_name, ''), COALESCE(appointment_id, 0),
       date, COALESCE(username, '')`

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(&a.ID, &a.OfficeName, &a.AppointmentID, &a.CreatedAt, &a.Username)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepository) Count(ctx context.Context, f repository.Filter) (int64, error) {
	where, args := filterClause(f, false)
	var count int64
	err := r.storage.pool.QueryRow(ctx, "SELECT COUNT(*) FROM appointments"+where, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *appointmentRepository) Latest(ctx context.Context) (*model.Appointment, error) {
	query := fmt.Sprintf("SELECT %s FROM appointments ORDER BY id DESC LIMIT 1", appointmentColumns)
	a, err := scanAppointment(r.storage.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepository) CountsByOffice(ctx context.Context, f repository.Filter) ([]model.OfficeCount, error) {
	where, args := filterClause(f, false)
	query := "SELECT COALESCE(office_name, ''), COUNT(*) FROM appointments" + where +
		" GROUP BY office_name ORDER BY COUNT(*) DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OfficeCount
	for rows.Next() {
		var oc model.OfficeCount
		if err := rows.Scan(&oc.OfficeName, &oc.Count); err != nil {
			return nil, err
		}
		result = append(result, oc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
