package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/metrics"
	hood "hood-sync/internal/features/hood/domain"
	"hood-sync/internal/features/orders/domain"
	"hood-sync/internal/features/orders/ports"

	"go.uber.org/zap"
)

// ErrSyncInProgress is returned when another sync holds the lock.
var ErrSyncInProgress = errors.New("order sync already in progress")

// ErrOrderNotFound is returned when the order is not stored locally.
var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidDays is returned when SyncRecent is asked for a non-positive window.
var ErrInvalidDays = errors.New("days must be positive")

const (
	defaultRunLimit = 20
	maxRunLimit     = 200
)

// SyncServiceImpl reconciles marketplace orders into local storage.
type SyncServiceImpl struct {
	// source reads orders from Hood.de.
	source ports.OrderSource
	// orders persists the reconciled orders.
	orders ports.OrderRepository
	// runs keeps the audit trail.
	runs ports.SyncRunRepository
	// lock prevents overlapping runs across processes.
	lock ports.Locker
	// now is the clock, replaced in tests.
	now func() time.Time
}

// NewSyncService creates a new instance of SyncServiceImpl.
func NewSyncService(source ports.OrderSource, orders ports.OrderRepository, runs ports.SyncRunRepository, lock ports.Locker) *SyncServiceImpl {
	return &SyncServiceImpl{
		source: source,
		orders: orders,
		runs:   runs,
		lock:   lock,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Sync fetches the orders matching filter and upserts each of them. Per-order failures are
// recorded on the run and never abort the remaining orders.
func (s *SyncServiceImpl) Sync(ctx context.Context, filter hood.OrderFilter) (*domain.SyncRun, error) {
	acquired, err := s.lock.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to acquire sync lock: %w", err)
	}
	if !acquired {
		return nil, ErrSyncInProgress
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx)); err != nil {
			logger.Get().Warn("Failed to release sync lock", zap.Error(err))
		}
	}()

	run := domain.NewSyncRun(domain.SyncKindOrders, s.now())
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("service: failed to create sync run: %w", err)
	}

	s.reconcile(ctx, run, filter)
	metrics.SyncRuns.WithLabelValues(string(run.Status)).Inc()

	logger.Get().Info("Order sync finished",
		zap.String("run_id", run.ID),
		zap.String("status", string(run.Status)),
		zap.Int("found", run.Found),
		zap.Int("created", run.Created),
		zap.Int("updated", run.Updated),
		zap.Int("failed", run.Failed),
		zap.Int64("duration_ms", run.DurationMs),
	)

	if err := s.runs.Save(context.WithoutCancel(ctx), run); err != nil {
		return run, fmt.Errorf("service: failed to save sync run: %w", err)
	}
	return run, nil
}

func (s *SyncServiceImpl) reconcile(ctx context.Context, run *domain.SyncRun, filter hood.OrderFilter) {
	result, err := s.source.ListOrders(ctx, filter)
	if err != nil {
		run.Finish(domain.SyncStatusError, err.Error(), s.now())
		return
	}
	if !result.Success {
		run.Finish(domain.SyncStatusError, fmt.Sprintf("%s: %s", result.Kind.Label(), result.Error), s.now())
		return
	}

	run.Found = len(result.Orders)
	for _, remote := range result.Orders {
		if err := ctx.Err(); err != nil {
			status := domain.SyncStatusPartial
			if run.Processed() == 0 {
				status = domain.SyncStatusError
			}
			run.Finish(status, "sync interrupted: "+err.Error(), s.now())
			return
		}

		if remote.OrderID == "" {
			run.Fail("unknown", errors.New("order without id"))
			metrics.SyncedOrders.WithLabelValues("failed").Inc()
			continue
		}

		created, err := s.orders.Reconcile(ctx, domain.FromRemote(remote, s.now()))
		if err != nil {
			run.Fail(remote.OrderID, err)
			metrics.SyncedOrders.WithLabelValues("failed").Inc()
			logger.Get().Error("Failed to reconcile order",
				zap.String("run_id", run.ID),
				zap.String("order_id", remote.OrderID),
				zap.Error(err),
			)
			continue
		}

		if created {
			run.Created++
			metrics.SyncedOrders.WithLabelValues("created").Inc()
		} else {
			run.Updated++
			metrics.SyncedOrders.WithLabelValues("updated").Inc()
		}
	}

	status := domain.SyncStatusSuccess
	if run.Failed > 0 {
		status = domain.SyncStatusPartial
	}
	run.Finish(status, "", s.now())
}

// SyncRecent syncs the orders placed in the last days days.
func (s *SyncServiceImpl) SyncRecent(ctx context.Context, days int) (*domain.SyncRun, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}

	end := s.now()
	return s.Sync(ctx, hood.OrderFilter{
		DateRange: &hood.DateRange{
			Type:  "orderDate",
			Start: end.AddDate(0, 0, -days),
			End:   end,
		},
	})
}

// Summary aggregates the stored orders.
func (s *SyncServiceImpl) Summary(ctx context.Context) (*domain.OrderSummary, error) {
	summary, err := s.orders.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to summarize orders: %w", err)
	}
	return summary, nil
}

// GetOrder returns one stored order with its items.
func (s *SyncServiceImpl) GetOrder(ctx context.Context, remoteID string) (*domain.LocalOrder, error) {
	order, err := s.orders.FindByRemoteID(ctx, remoteID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListRuns returns the most recent sync runs first.
func (s *SyncServiceImpl) ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	switch {
	case limit <= 0:
		limit = defaultRunLimit
	case limit > maxRunLimit:
		limit = maxRunLimit
	}

	runs, err := s.runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sync runs: %w", err)
	}
	return runs, nil
}
