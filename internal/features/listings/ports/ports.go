package ports

import (
	"context"

	hood "hood-sync/internal/features/hood/domain"
	"hood-sync/internal/features/listings/domain"
)

// Marketplace is the listing side of the Hood.de client.
// This is a Secondary Port (Driven Port).
type Marketplace interface {
	InsertItem(ctx context.Context, item hood.ItemPayload) (hood.UploadOutcome, error)
	ValidateItem(ctx context.Context, item hood.ItemPayload) (hood.UploadOutcome, error)
	UpdateItems(ctx context.Context, items []hood.ItemPayload) (hood.BatchOutcome, error)
	DeleteItems(ctx context.Context, itemIDs ...string) (hood.BatchOutcome, error)
	ItemDetail(ctx context.Context, itemID string) (hood.ItemStatusResult, error)
	ItemStatus(ctx context.Context, itemIDs []string, levels []string) (hood.ItemStatusResult, error)
	ListItems(ctx context.Context, q hood.ItemListQuery) (hood.ItemListResult, error)
}

// UploadLogRepository persists upload attempts and bulk uploads.
type UploadLogRepository interface {
	CreateLog(ctx context.Context, log *domain.UploadLog) error
	SaveLog(ctx context.Context, log *domain.UploadLog) error
	// ListLogs returns the attempts for ref, newest first.
	ListLogs(ctx context.Context, ref string, limit int) ([]domain.UploadLog, error)

	CreateBulk(ctx context.Context, bulk *domain.BulkUpload) error
	SaveBulk(ctx context.Context, bulk *domain.BulkUpload) error
	// FindBulk returns nil, nil when the bulk upload is unknown.
	FindBulk(ctx context.Context, id string) (*domain.BulkUpload, error)
}

// BulkItem is one entry of a bulk upload.
type BulkItem struct {
	Ref  string           `json:"ref"`
	Item hood.ItemPayload `json:"item"`
}

// UploadService defines the primary port for listing management.
type UploadService interface {
	Validate(ctx context.Context, item hood.ItemPayload) (hood.UploadOutcome, error)
	Upload(ctx context.Context, ref string, item hood.ItemPayload) (hood.UploadOutcome, error)
	ValidateAndUpload(ctx context.Context, ref string, item hood.ItemPayload) (hood.UploadOutcome, error)
	BulkUpload(ctx context.Context, name string, items []BulkItem) (*domain.BulkUpload, error)
	GetBulk(ctx context.Context, id string) (*domain.BulkUpload, error)
	Logs(ctx context.Context, ref string, limit int) ([]domain.UploadLog, error)
	Update(ctx context.Context, items []hood.ItemPayload) (hood.BatchOutcome, error)
	Delete(ctx context.Context, itemIDs []string) (hood.BatchOutcome, error)
	Detail(ctx context.Context, itemID string) (hood.ItemStatusResult, error)
	Status(ctx context.Context, itemIDs []string, levels []string) (hood.ItemStatusResult, error)
	List(ctx context.Context, q hood.ItemListQuery) (hood.ItemListResult, error)
}
