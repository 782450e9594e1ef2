package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/passtrack/passboard/internal/domain/model"
)

// UpdateSource runs one polling pass and reports detected changes.
type UpdateSource interface {
	PollUpdates(ctx context.Context) (*model.UpdateReport, error)
}

// Notifier receives alerts about newly captured records.
type Notifier interface {
	NotifyNewAppointments(count int64)
	NotifyNewOrders(count int64)
}

// LogNotifier emits notifications through slog.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyNewAppointments(count int64) {
	n.logger.Info("new appointments captured", slog.Int64("count", count))
}

func (n *LogNotifier) NotifyNewOrders(count int64) {
	n.logger.Info("new orders captured", slog.Int64("count", count))
}

// UpdatePoller invokes the polling pass on a fixed interval and raises
// notifications when record counts grow. It keeps its own last-seen counts,
// separate from the detector's snapshot, and never alerts on the very first
// observation after startup.
type UpdatePoller struct {
	source   UpdateSource
	notifier Notifier
	interval time.Duration
	logger   *slog.Logger

	// Touched only by the polling goroutine.
	lastAppointments int64
	lastOrders       int64

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewUpdatePoller constructs the background poller.
func NewUpdatePoller(source UpdateSource, notifier Notifier, interval time.Duration, logger *slog.Logger) *UpdatePoller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &UpdatePoller{
		source:   source,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the polling loop.
func (p *UpdatePoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.loop(runCtx)
}

// Stop terminates the loop and waits for it to exit. A pass already in
// flight finishes its server-side work; its result is simply discarded.
func (p *UpdatePoller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *UpdatePoller) loop(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *UpdatePoller) poll(ctx context.Context) {
	report, err := p.source.PollUpdates(ctx)
	if err != nil {
		// Treated as "no update this cycle"; next tick retries.
		p.logger.Warn("update poll failed", slog.String("error", err.Error()))
		return
	}

	if report.HasUpdates {
		if report.AppointmentsCount > p.lastAppointments && p.lastAppointments > 0 {
			p.notifier.NotifyNewAppointments(report.AppointmentsCount - p.lastAppointments)
		}
		if report.OrdersCount > p.lastOrders && p.lastOrders > 0 {
			p.notifier.NotifyNewOrders(report.OrdersCount - p.lastOrders)
		}
	}

	p.lastAppointments = report.AppointmentsCount
	p.lastOrders = report.OrdersCount
}
