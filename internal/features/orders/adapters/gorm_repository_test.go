package adapters

import (
	"context"
	"testing"
	"time"

	"hood-sync/internal/core/config"
	"hood-sync/internal/core/database"
	"hood-sync/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"}, "test")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, Models()...))
	return db
}

func sampleOrder(id string, items int) domain.LocalOrder {
	order := domain.LocalOrder{
		RemoteOrderID:   id,
		Status:          domain.OrderStatusNew,
		TotalAmount:     10,
		PaymentProvider: "paypal",
		ShipMethod:      "DHL",
		LastSyncedAt:    time.Now().UTC(),
	}
	for i := 0; i < items; i++ {
		order.Items = append(order.Items, domain.LocalOrderItem{RemoteItemID: "item", Quantity: 1, UnitPrice: 5})
	}
	return order
}

func countItems(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.LocalOrderItem{}).Count(&n).Error)
	return n
}

func TestGormOrderRepository_Reconcile(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	created, err := repo.Reconcile(ctx, sampleOrder("A-1", 2))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(2), countItems(t, db))

	first, err := repo.FindByRemoteID(ctx, "A-1")
	require.NoError(t, err)
	require.NotNil(t, first)

	again := sampleOrder("A-1", 2)
	again.Status = domain.OrderStatusPaid
	created, err = repo.Reconcile(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(2), countItems(t, db), "items are replaced, not appended")

	second, err := repo.FindByRemoteID(ctx, "A-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.OrderStatusPaid, second.Status)
	assert.Len(t, second.Items, 2)

	shrunk := sampleOrder("A-1", 1)
	_, err = repo.Reconcile(ctx, shrunk)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countItems(t, db))

	var orders int64
	require.NoError(t, db.Model(&domain.LocalOrder{}).Count(&orders).Error)
	assert.Equal(t, int64(1), orders)
}

func TestGormOrderRepository_FindByRemoteID_Missing(t *testing.T) {
	repo := NewGormOrderRepository(newTestDB(t))

	order, err := repo.FindByRemoteID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestGormOrderRepository_Summary(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	a := sampleOrder("A", 0)
	b := sampleOrder("B", 0)
	b.Status = domain.OrderStatusPaid
	b.TotalAmount = 15.5
	c := sampleOrder("C", 0)
	c.PaymentProvider = ""
	for _, o := range []domain.LocalOrder{a, b, c} {
		_, err := repo.Reconcile(ctx, o)
		require.NoError(t, err)
	}

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalOrders)
	assert.InDelta(t, 35.5, summary.TotalAmount, 0.001)
	assert.Equal(t, map[string]int64{"new": 2, "paid": 1}, summary.ByStatus)
	assert.Equal(t, map[string]int64{"paypal": 2, "unknown": 1}, summary.ByPaymentProvider)
	assert.Equal(t, map[string]int64{"DHL": 3}, summary.ByShipMethod)
}

func TestGormSyncRunRepository(t *testing.T) {
	repo := NewGormSyncRunRepository(newTestDB(t))
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	older := domain.NewSyncRun(domain.SyncKindOrders, start)
	newer := domain.NewSyncRun(domain.SyncKindOrders, start.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	newer.Finish(domain.SyncStatusSuccess, "", start.Add(2*time.Hour))
	require.NoError(t, repo.Save(ctx, newer))

	runs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, domain.SyncStatusSuccess, runs[0].Status)
	assert.Equal(t, domain.SyncStatusPending, runs[1].Status)

	runs, err = repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
