package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hood-sync/internal/core/cache"
	"hood-sync/internal/core/config"
	"hood-sync/internal/core/database"
	hood "hood-sync/internal/features/hood/domain"
	"hood-sync/internal/features/orders/adapters"
	"hood-sync/internal/features/orders/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderSource is a mock implementation of ports.OrderSource
type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) ListOrders(ctx context.Context, filter hood.OrderFilter) (hood.OrderListResult, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(hood.OrderListResult), args.Error(1)
}

// MockOrderRepository is a mock implementation of ports.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Reconcile(ctx context.Context, order domain.LocalOrder) (bool, error) {
	args := m.Called(ctx, order)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) FindByRemoteID(ctx context.Context, remoteID string) (*domain.LocalOrder, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocalOrder), args.Error(1)
}

func (m *MockOrderRepository) Summary(ctx context.Context) (*domain.OrderSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderSummary), args.Error(1)
}

// MockSyncRunRepository is a mock implementation of ports.SyncRunRepository
type MockSyncRunRepository struct {
	mock.Mock
}

func (m *MockSyncRunRepository) Create(ctx context.Context, run *domain.SyncRun) error {
	return m.Called(ctx, run).Error(0)
}

func (m *MockSyncRunRepository) Save(ctx context.Context, run *domain.SyncRun) error {
	return m.Called(ctx, run).Error(0)
}

func (m *MockSyncRunRepository) List(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SyncRun), args.Error(1)
}

// fakeLocker is a single-process Locker.
type fakeLocker struct {
	held       bool
	acquireErr error
	releases   int
}

func (l *fakeLocker) Acquire(ctx context.Context) (bool, error) {
	if l.acquireErr != nil {
		return false, l.acquireErr
	}
	if l.held {
		return false, nil
	}
	l.held = true
	return true, nil
}

func (l *fakeLocker) Release(ctx context.Context) error {
	l.held = false
	l.releases++
	return nil
}

func orders(ids ...string) hood.OrderListResult {
	out := hood.OrderListResult{CallResult: hood.CallResult{Success: true}}
	for _, id := range ids {
		out.Orders = append(out.Orders, hood.RemoteOrder{
			OrderID:         id,
			BuyerActionCode: "payed",
			Items:           []hood.RemoteOrderItem{{ItemID: "i-" + id, Quantity: 1, Price: 5}},
		})
	}
	return out
}

func newMockedService() (*SyncServiceImpl, *MockOrderSource, *MockOrderRepository, *MockSyncRunRepository, *fakeLocker) {
	source := new(MockOrderSource)
	repo := new(MockOrderRepository)
	runs := new(MockSyncRunRepository)
	lock := &fakeLocker{}
	return NewSyncService(source, repo, runs, lock), source, repo, runs, lock
}

func TestSyncService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, source, repo, runs, lock := newMockedService()
		source.On("ListOrders", mock.Anything, hood.OrderFilter{}).Return(orders("1", "2"), nil).Once()
		repo.On("Reconcile", mock.Anything, mock.MatchedBy(func(o domain.LocalOrder) bool { return o.RemoteOrderID == "1" })).Return(true, nil).Once()
		repo.On("Reconcile", mock.Anything, mock.MatchedBy(func(o domain.LocalOrder) bool { return o.RemoteOrderID == "2" })).Return(false, nil).Once()
		runs.On("Create", mock.Anything, mock.AnythingOfType("*domain.SyncRun")).Return(nil).Once()
		runs.On("Save", mock.Anything, mock.AnythingOfType("*domain.SyncRun")).Return(nil).Once()

		run, err := svc.Sync(ctx, hood.OrderFilter{})
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStatusSuccess, run.Status)
		assert.Equal(t, 2, run.Found)
		assert.Equal(t, 1, run.Created)
		assert.Equal(t, 1, run.Updated)
		assert.True(t, run.Done())
		assert.Equal(t, 1, lock.releases)
		assert.False(t, lock.held)
		source.AssertExpectations(t)
		repo.AssertExpectations(t)
		runs.AssertExpectations(t)
	})

	t.Run("PartialFailure", func(t *testing.T) {
		svc, source, repo, runs, _ := newMockedService()
		source.On("ListOrders", mock.Anything, mock.Anything).Return(orders("1", "2", "3"), nil).Once()
		repo.On("Reconcile", mock.Anything, mock.MatchedBy(func(o domain.LocalOrder) bool { return o.RemoteOrderID == "2" })).Return(false, errors.New("db error")).Once()
		repo.On("Reconcile", mock.Anything, mock.Anything).Return(true, nil).Twice()
		runs.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		runs.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		run, err := svc.Sync(ctx, hood.OrderFilter{})
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStatusPartial, run.Status)
		assert.Equal(t, 2, run.Created)
		assert.Equal(t, 1, run.Failed)
		assert.Equal(t, []string{"2: db error"}, run.FailureList())
		repo.AssertExpectations(t)
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		svc, source, repo, runs, lock := newMockedService()
		failed := hood.OrderListResult{CallResult: hood.Failed(hood.KindGlobalError, "Login fehlgeschlagen", "<raw/>")}
		source.On("ListOrders", mock.Anything, mock.Anything).Return(failed, nil).Once()
		runs.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		runs.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		run, err := svc.Sync(ctx, hood.OrderFilter{})
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStatusError, run.Status)
		assert.Equal(t, "global_error: Login fehlgeschlagen", run.ErrorDetail)
		repo.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
		assert.Equal(t, 1, lock.releases)
	})

	t.Run("ValidationError", func(t *testing.T) {
		svc, source, _, runs, _ := newMockedService()
		source.On("ListOrders", mock.Anything, mock.Anything).Return(hood.OrderListResult{}, errors.New("orderList: invalid list mode")).Once()
		runs.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		runs.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		run, err := svc.Sync(ctx, hood.OrderFilter{ListMode: "bogus"})
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStatusError, run.Status)
		assert.Contains(t, run.ErrorDetail, "invalid list mode")
	})

	t.Run("LockHeld", func(t *testing.T) {
		svc, source, _, runs, lock := newMockedService()
		lock.held = true

		run, err := svc.Sync(ctx, hood.OrderFilter{})
		assert.ErrorIs(t, err, ErrSyncInProgress)
		assert.Nil(t, run)
		source.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
		runs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("LockError", func(t *testing.T) {
		svc, _, _, _, lock := newMockedService()
		lock.acquireErr = errors.New("redis down")

		_, err := svc.Sync(ctx, hood.OrderFilter{})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrSyncInProgress)
	})

	t.Run("Cancelled", func(t *testing.T) {
		svc, source, repo, runs, _ := newMockedService()
		cctx, cancel := context.WithCancel(ctx)
		source.On("ListOrders", mock.Anything, mock.Anything).Return(orders("1", "2", "3"), nil).Once()
		repo.On("Reconcile", mock.Anything, mock.Anything).Run(func(mock.Arguments) { cancel() }).Return(true, nil).Once()
		runs.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		runs.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		run, err := svc.Sync(cctx, hood.OrderFilter{})
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStatusPartial, run.Status)
		assert.Equal(t, 1, run.Created)
		assert.Contains(t, run.ErrorDetail, "interrupted")
		repo.AssertExpectations(t)
	})

	t.Run("CancelledBeforeFirstOrder", func(t *testing.T) {
		svc, source, repo, runs, _ := newMockedService()
		cctx, cancel := context.WithCancel(ctx)
		source.On("ListOrders", mock.Anything, mock.Anything).Run(func(mock.Arguments) { cancel() }).Return(orders("1"), nil).Once()
		runs.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		runs.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		run, err := svc.Sync(cctx, hood.OrderFilter{})
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStatusError, run.Status)
		repo.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
	})
}

func TestSyncService_SyncRecent(t *testing.T) {
	svc, source, _, runs, _ := newMockedService()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	source.On("ListOrders", mock.Anything, mock.MatchedBy(func(f hood.OrderFilter) bool {
		return f.DateRange != nil &&
			f.DateRange.Type == "orderDate" &&
			f.DateRange.Start.Equal(now.AddDate(0, 0, -7)) &&
			f.DateRange.End.Equal(now)
	})).Return(orders(), nil).Once()
	runs.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	runs.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	run, err := svc.SyncRecent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusSuccess, run.Status)
	source.AssertExpectations(t)

	_, err = svc.SyncRecent(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDays)
}

func TestSyncService_GetOrder(t *testing.T) {
	svc, _, repo, _, _ := newMockedService()
	ctx := context.Background()

	repo.On("FindByRemoteID", ctx, "1").Return(&domain.LocalOrder{RemoteOrderID: "1"}, nil).Once()
	order, err := svc.GetOrder(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", order.RemoteOrderID)

	repo.On("FindByRemoteID", ctx, "2").Return(nil, nil).Once()
	_, err = svc.GetOrder(ctx, "2")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	repo.On("FindByRemoteID", ctx, "3").Return(nil, errors.New("db error")).Once()
	_, err = svc.GetOrder(ctx, "3")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrOrderNotFound)
}

func TestSyncService_ListRuns(t *testing.T) {
	svc, _, _, runs, _ := newMockedService()
	ctx := context.Background()

	runs.On("List", ctx, defaultRunLimit).Return([]domain.SyncRun{{ID: "a"}}, nil).Once()
	out, err := svc.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	runs.On("List", ctx, maxRunLimit).Return([]domain.SyncRun{}, nil).Once()
	_, err = svc.ListRuns(ctx, 10000)
	require.NoError(t, err)
	runs.AssertExpectations(t)
}

// TestSyncService_Idempotent runs the same sync twice against sqlite and a redis lock.
func TestSyncService_Idempotent(t *testing.T) {
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"}, "test")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, adapters.Models()...))

	mr := miniredis.RunT(t)
	redisCache, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer redisCache.Close()

	source := new(MockOrderSource)
	remote := orders("7001")
	remote.Orders[0].Items = append(remote.Orders[0].Items, hood.RemoteOrderItem{ItemID: "extra", Quantity: 2, Price: 1})
	source.On("ListOrders", mock.Anything, mock.Anything).Return(remote, nil).Twice()

	svc := NewSyncService(
		source,
		adapters.NewGormOrderRepository(db),
		adapters.NewGormSyncRunRepository(db),
		cache.NewLock(redisCache, "lock:orders-sync", time.Minute),
	)
	ctx := context.Background()

	first, err := svc.Sync(ctx, hood.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)
	assert.Equal(t, 0, first.Updated)

	second, err := svc.Sync(ctx, hood.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Updated)

	var items int64
	require.NoError(t, db.Model(&domain.LocalOrderItem{}).Count(&items).Error)
	assert.Equal(t, int64(2), items)

	order, err := svc.GetOrder(ctx, "7001")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)

	history, err := svc.ListRuns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	assert.False(t, mr.Exists("lock:orders-sync"))
}
