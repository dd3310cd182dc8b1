package ports

import (
	"context"

	hood "hood-sync/internal/features/hood/domain"
	"hood-sync/internal/features/orders/domain"
)

// OrderSource reads orders from the marketplace.
// This is a Secondary Port (Driven Port).
type OrderSource interface {
	ListOrders(ctx context.Context, filter hood.OrderFilter) (hood.OrderListResult, error)
}

// OrderRepository persists reconciled orders.
type OrderRepository interface {
	// Reconcile upserts one order and replaces its items atomically. It reports whether the
	// order was created.
	Reconcile(ctx context.Context, order domain.LocalOrder) (created bool, err error)
	// FindByRemoteID returns nil, nil when the order is unknown.
	FindByRemoteID(ctx context.Context, remoteID string) (*domain.LocalOrder, error)
	Summary(ctx context.Context) (*domain.OrderSummary, error)
}

// SyncRunRepository persists the audit trail of sync runs.
type SyncRunRepository interface {
	Create(ctx context.Context, run *domain.SyncRun) error
	Save(ctx context.Context, run *domain.SyncRun) error
	List(ctx context.Context, limit int) ([]domain.SyncRun, error)
}

// Locker guards against overlapping syncs.
type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// SyncService defines the primary port for order reconciliation.
type SyncService interface {
	Sync(ctx context.Context, filter hood.OrderFilter) (*domain.SyncRun, error)
	SyncRecent(ctx context.Context, days int) (*domain.SyncRun, error)
	Summary(ctx context.Context) (*domain.OrderSummary, error)
	GetOrder(ctx context.Context, remoteID string) (*domain.LocalOrder, error)
	ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)
}
