package adapters

import (
	"context"
	"errors"
	"fmt"

	"hood-sync/internal/features/listings/domain"

	"gorm.io/gorm"
)

// Models lists the tables owned by this feature, for migrations.
func Models() []interface{} {
	return []interface{}{&domain.UploadLog{}, &domain.BulkUpload{}}
}

// GormUploadLogRepository implements ports.UploadLogRepository on gorm.
type GormUploadLogRepository struct {
	db *gorm.DB
}

// NewGormUploadLogRepository creates a new GormUploadLogRepository.
func NewGormUploadLogRepository(db *gorm.DB) *GormUploadLogRepository {
	return &GormUploadLogRepository{db: db}
}

func (r *GormUploadLogRepository) CreateLog(ctx context.Context, log *domain.UploadLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create upload log: %w", err)
	}
	return nil
}

func (r *GormUploadLogRepository) SaveLog(ctx context.Context, log *domain.UploadLog) error {
	if err := r.db.WithContext(ctx).Save(log).Error; err != nil {
		return fmt.Errorf("failed to save upload log: %w", err)
	}
	return nil
}

func (r *GormUploadLogRepository) ListLogs(ctx context.Context, ref string, limit int) ([]domain.UploadLog, error) {
	var logs []domain.UploadLog
	err := r.db.WithContext(ctx).
		Where("product_ref = ?", ref).
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upload logs: %w", err)
	}
	return logs, nil
}

func (r *GormUploadLogRepository) CreateBulk(ctx context.Context, bulk *domain.BulkUpload) error {
	if err := r.db.WithContext(ctx).Create(bulk).Error; err != nil {
		return fmt.Errorf("failed to create bulk upload: %w", err)
	}
	return nil
}

func (r *GormUploadLogRepository) SaveBulk(ctx context.Context, bulk *domain.BulkUpload) error {
	if err := r.db.WithContext(ctx).Save(bulk).Error; err != nil {
		return fmt.Errorf("failed to save bulk upload: %w", err)
	}
	return nil
}

func (r *GormUploadLogRepository) FindBulk(ctx context.Context, id string) (*domain.BulkUpload, error) {
	var bulk domain.BulkUpload
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&bulk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bulk upload: %w", err)
	}
	return &bulk, nil
}
