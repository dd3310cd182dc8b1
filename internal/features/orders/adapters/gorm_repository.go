package adapters

import (
	"context"
	"errors"
	"fmt"

	"hood-sync/internal/features/orders/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists the tables owned by this feature, for migrations.
func Models() []interface{} {
	return []interface{}{&domain.LocalOrder{}, &domain.LocalOrderItem{}, &domain.SyncRun{}}
}

// GormOrderRepository implements ports.OrderRepository on gorm.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Reconcile creates or updates the order by its remote id and replaces its items, all in one
// transaction.
func (r *GormOrderRepository) Reconcile(ctx context.Context, order domain.LocalOrder) (bool, error) {
	created := false
	items := order.Items
	order.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.LocalOrder
		err := tx.Where("remote_order_id = ?", order.RemoteOrderID).Take(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to look up order: %w", err)
		default:
			order.ID = existing.ID
			order.CreatedAt = existing.CreatedAt
			if err := tx.Omit(clause.Associations).Save(&order).Error; err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}
			if err := tx.Where("order_id = ?", existing.ID).Delete(&domain.LocalOrderItem{}).Error; err != nil {
				return fmt.Errorf("failed to delete order items: %w", err)
			}
		}

		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// FindByRemoteID loads an order with its items.
func (r *GormOrderRepository) FindByRemoteID(ctx context.Context, remoteID string) (*domain.LocalOrder, error) {
	var order domain.LocalOrder
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("remote_order_id = ?", remoteID).
		Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", remoteID, err)
	}
	return &order, nil
}

// Summary counts orders and sums their amounts, overall and per dimension.
func (r *GormOrderRepository) Summary(ctx context.Context) (*domain.OrderSummary, error) {
	db := r.db.WithContext(ctx)

	var totals struct {
		Count  int64
		Amount float64
	}
	if err := db.Model(&domain.LocalOrder{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS amount").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum orders: %w", err)
	}

	summary := &domain.OrderSummary{
		TotalOrders: totals.Count,
		TotalAmount: totals.Amount,
	}

	var err error
	if summary.ByStatus, err = r.countBy(db, "status"); err != nil {
		return nil, err
	}
	if summary.ByPaymentProvider, err = r.countBy(db, "payment_provider"); err != nil {
		return nil, err
	}
	if summary.ByShipMethod, err = r.countBy(db, "ship_method"); err != nil {
		return nil, err
	}
	return summary, nil
}

// countBy groups orders by a fixed column name; column is never user input.
func (r *GormOrderRepository) countBy(db *gorm.DB, column string) (map[string]int64, error) {
	var rows []struct {
		Label string
		Total int64
	}
	if err := db.Model(&domain.LocalOrder{}).
		Select(column + " AS label, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group orders by %s: %w", column, err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = "unknown"
		}
		out[label] += row.Total
	}
	return out, nil
}

// GormSyncRunRepository implements ports.SyncRunRepository on gorm.
type GormSyncRunRepository struct {
	db *gorm.DB
}

// NewGormSyncRunRepository creates a new GormSyncRunRepository.
func NewGormSyncRunRepository(db *gorm.DB) *GormSyncRunRepository {
	return &GormSyncRunRepository{db: db}
}

// Create inserts a new run.
func (r *GormSyncRunRepository) Create(ctx context.Context, run *domain.SyncRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create sync run: %w", err)
	}
	return nil
}

// Save writes the current state of a run.
func (r *GormSyncRunRepository) Save(ctx context.Context, run *domain.SyncRun) error {
	if err := r.db.WithContext(ctx).Save(run).Error; err != nil {
		return fmt.Errorf("failed to save sync run: %w", err)
	}
	return nil
}

// List returns the latest runs first.
func (r *GormSyncRunRepository) List(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	var runs []domain.SyncRun
	if err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}
