package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/metrics"
	hood "hood-sync/internal/features/hood/domain"
	"hood-sync/internal/features/hood/protocol"
	"hood-sync/internal/features/listings/domain"
	"hood-sync/internal/features/listings/ports"

	"go.uber.org/zap"
)

var (
	// ErrInvalidItem is returned when an item is rejected before any network call.
	ErrInvalidItem = errors.New("invalid item")
	// ErrNoItems is returned when a bulk upload has nothing to upload.
	ErrNoItems = errors.New("no items to upload")
	// ErrBulkNotFound is returned when the bulk upload does not exist.
	ErrBulkNotFound = errors.New("bulk upload not found")
)

const (
	defaultLogLimit = 20
	maxLogLimit     = 200
)

// UploadServiceImpl manages listings on Hood.de and keeps an audit trail of uploads.
type UploadServiceImpl struct {
	market ports.Marketplace
	logs   ports.UploadLogRepository
	pacer  Pacer
	now    func() time.Time
}

// NewUploadService creates a new instance of UploadServiceImpl.
func NewUploadService(market ports.Marketplace, logs ports.UploadLogRepository, pacer Pacer) *UploadServiceImpl {
	if pacer == nil {
		pacer = NoPacing{}
	}
	return &UploadServiceImpl{
		market: market,
		logs:   logs,
		pacer:  pacer,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Validate runs the local checks and asks Hood.de to validate the item without listing it.
func (s *UploadServiceImpl) Validate(ctx context.Context, item hood.ItemPayload) (hood.UploadOutcome, error) {
	if err := domain.CheckCompliance(item); err != nil {
		return hood.UploadOutcome{}, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	outcome, err := s.market.ValidateItem(ctx, item)
	if err != nil {
		return outcome, rejected(err)
	}
	return outcome, nil
}

// Upload lists one item. The attempt is logged as pending before the call and finalized with
// the outcome.
func (s *UploadServiceImpl) Upload(ctx context.Context, ref string, item hood.ItemPayload) (hood.UploadOutcome, error) {
	return s.upload(ctx, ref, item, nil)
}

// ValidateAndUpload lists the item only if Hood.de validated it first.
func (s *UploadServiceImpl) ValidateAndUpload(ctx context.Context, ref string, item hood.ItemPayload) (hood.UploadOutcome, error) {
	validation, err := s.Validate(ctx, item)
	if err != nil {
		return validation, err
	}
	if !validation.Success {
		return validation, nil
	}
	return s.upload(ctx, ref, item, nil)
}

func (s *UploadServiceImpl) upload(ctx context.Context, ref string, item hood.ItemPayload, bulkID *string) (hood.UploadOutcome, error) {
	if ref == "" {
		return hood.UploadOutcome{}, fmt.Errorf("%w: product reference is required", ErrInvalidItem)
	}
	if err := domain.CheckCompliance(item); err != nil {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return hood.UploadOutcome{}, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	entry := domain.NewUploadLog(ref, hood.FunctionItemInsert, bulkID)
	if err := s.logs.CreateLog(ctx, entry); err != nil {
		return hood.UploadOutcome{}, fmt.Errorf("service: failed to create upload log: %w", err)
	}

	outcome, err := s.market.InsertItem(ctx, item)
	if err != nil {
		entry.Reject(err)
		s.saveLog(ctx, entry)
		metrics.Uploads.WithLabelValues("rejected").Inc()
		return outcome, rejected(err)
	}

	entry.Finalize(outcome)
	s.saveLog(ctx, entry)
	metrics.Uploads.WithLabelValues(string(entry.Status)).Inc()

	if outcome.Success {
		logger.Get().Info("Item uploaded",
			zap.String("ref", ref),
			zap.String("item_id", outcome.ItemID),
			zap.Bool("already_exists", outcome.AlreadyExists),
		)
	} else {
		logger.Get().Warn("Item upload failed",
			zap.String("ref", ref),
			zap.String("kind", outcome.Kind.Label()),
			zap.String("error", outcome.Error),
		)
	}
	return outcome, nil
}

// saveLog finalizes the row even when the request was cancelled. A failed write is logged but
// does not change the outcome.
func (s *UploadServiceImpl) saveLog(ctx context.Context, entry *domain.UploadLog) {
	if err := s.logs.SaveLog(context.WithoutCancel(ctx), entry); err != nil {
		logger.Get().Error("Failed to save upload log",
			zap.Uint("log_id", entry.ID),
			zap.String("ref", entry.ProductRef),
			zap.Error(err),
		)
	}
}

// BulkUpload lists the items one after another, pacing the calls. A failing item never stops
// the others; ctx is checked between items.
func (s *UploadServiceImpl) BulkUpload(ctx context.Context, name string, items []ports.BulkItem) (*domain.BulkUpload, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	bulk := domain.NewBulkUpload(name, len(items))
	bulk.Start(s.now())
	if err := s.logs.CreateBulk(ctx, bulk); err != nil {
		return nil, fmt.Errorf("service: failed to create bulk upload: %w", err)
	}

	var interrupted error
	for i, entry := range items {
		if i > 0 {
			if err := s.pacer.Wait(ctx); err != nil {
				interrupted = err
				break
			}
		}
		if err := ctx.Err(); err != nil {
			interrupted = err
			break
		}

		outcome, err := s.upload(ctx, entry.Ref, entry.Item, &bulk.ID)
		switch {
		case err != nil:
			bulk.Fail(entry.Ref, err.Error())
		case !outcome.Success:
			bulk.Fail(entry.Ref, outcome.Error)
		default:
			bulk.Uploaded++
		}
	}
	bulk.Finish(interrupted, s.now())

	logger.Get().Info("Bulk upload finished",
		zap.String("bulk_id", bulk.ID),
		zap.String("status", string(bulk.Status)),
		zap.Int("total", bulk.Total),
		zap.Int("uploaded", bulk.Uploaded),
		zap.Int("failed", bulk.Failed),
	)

	if err := s.logs.SaveBulk(context.WithoutCancel(ctx), bulk); err != nil {
		return bulk, fmt.Errorf("service: failed to save bulk upload: %w", err)
	}
	return bulk, nil
}

// GetBulk returns a bulk upload by id.
func (s *UploadServiceImpl) GetBulk(ctx context.Context, id string) (*domain.BulkUpload, error) {
	bulk, err := s.logs.FindBulk(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bulk upload: %w", err)
	}
	if bulk == nil {
		return nil, ErrBulkNotFound
	}
	return bulk, nil
}

// Logs returns the upload attempts for a product, newest first.
func (s *UploadServiceImpl) Logs(ctx context.Context, ref string, limit int) ([]domain.UploadLog, error) {
	switch {
	case limit <= 0:
		limit = defaultLogLimit
	case limit > maxLogLimit:
		limit = maxLogLimit
	}

	logs, err := s.logs.ListLogs(ctx, ref, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list upload logs: %w", err)
	}
	return logs, nil
}

// Update changes up to five listed items in one call.
func (s *UploadServiceImpl) Update(ctx context.Context, items []hood.ItemPayload) (hood.BatchOutcome, error) {
	outcome, err := s.market.UpdateItems(ctx, items)
	if err != nil {
		return outcome, rejected(err)
	}
	return outcome, nil
}

// Delete ends the given listings.
func (s *UploadServiceImpl) Delete(ctx context.Context, itemIDs []string) (hood.BatchOutcome, error) {
	outcome, err := s.market.DeleteItems(ctx, itemIDs...)
	if err != nil {
		return outcome, rejected(err)
	}
	return outcome, nil
}

// Detail reads one listing back.
func (s *UploadServiceImpl) Detail(ctx context.Context, itemID string) (hood.ItemStatusResult, error) {
	result, err := s.market.ItemDetail(ctx, itemID)
	if err != nil {
		return result, rejected(err)
	}
	return result, nil
}

// Status reads the state of the given listings.
func (s *UploadServiceImpl) Status(ctx context.Context, itemIDs []string, levels []string) (hood.ItemStatusResult, error) {
	result, err := s.market.ItemStatus(ctx, itemIDs, levels)
	if err != nil {
		return result, rejected(err)
	}
	return result, nil
}

// List pages through the seller's listings.
func (s *UploadServiceImpl) List(ctx context.Context, q hood.ItemListQuery) (hood.ItemListResult, error) {
	result, err := s.market.ListItems(ctx, q)
	if err != nil {
		return result, rejected(err)
	}
	return result, nil
}

// rejected marks request validation failures with ErrInvalidItem.
func rejected(err error) error {
	var ve *protocol.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	return fmt.Errorf("service: marketplace call failed: %w", err)
}
