package domain

import (
	"encoding/json"
	"time"

	hood "hood-sync/internal/features/hood/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UploadStatus is the state of one upload attempt.
type UploadStatus string

const (
	UploadStatusPending UploadStatus = "pending"
	UploadStatusSuccess UploadStatus = "success"
	UploadStatusError   UploadStatus = "error"
)

// UploadLog records one attempt to list one item. A row is written as pending before the call
// and finalized once with the outcome.
type UploadLog struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// ProductRef is the caller's key for the product.
	ProductRef   string       `gorm:"size:100;not null;index" json:"product_ref"`
	BulkUploadID *string      `gorm:"size:36;index" json:"bulk_upload_id,omitempty"`
	Function     string       `gorm:"size:30;not null" json:"function"`
	Status       UploadStatus `gorm:"size:20;not null;index" json:"status"`
	RemoteItemID string       `gorm:"size:50;index" json:"remote_item_id,omitempty"`
	ErrorMessage string       `gorm:"type:text" json:"error_message,omitempty"`
	// Response is the interpreted outcome without the raw body.
	Response    datatypes.JSON `json:"response,omitempty"`
	RawResponse string         `gorm:"type:text" json:"raw_response,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName specifies the table name.
func (UploadLog) TableName() string {
	return "hood_upload_logs"
}

// NewUploadLog starts a pending attempt.
func NewUploadLog(ref, function string, bulkID *string) *UploadLog {
	return &UploadLog{
		ProductRef:   ref,
		BulkUploadID: bulkID,
		Function:     function,
		Status:       UploadStatusPending,
	}
}

// Finalize copies the outcome into a pending log.
func (l *UploadLog) Finalize(o hood.UploadOutcome) {
	if l.Status != UploadStatusPending {
		return
	}

	l.RemoteItemID = o.ItemID
	l.RawResponse = o.RawResponse
	if o.Success {
		l.Status = UploadStatusSuccess
	} else {
		l.Status = UploadStatusError
		l.ErrorMessage = o.Error
	}

	trimmed := o
	trimmed.RawResponse = ""
	if data, err := json.Marshal(trimmed); err == nil {
		l.Response = datatypes.JSON(data)
	}
}

// Reject finalizes a pending log with an error that happened before or instead of a response.
func (l *UploadLog) Reject(err error) {
	if l.Status != UploadStatusPending {
		return
	}
	l.Status = UploadStatusError
	l.ErrorMessage = err.Error()
}

// BulkStatus is the state of a bulk upload.
type BulkStatus string

const (
	BulkStatusPending    BulkStatus = "pending"
	BulkStatusProcessing BulkStatus = "processing"
	BulkStatusCompleted  BulkStatus = "completed"
	BulkStatusError      BulkStatus = "error"
)

// BulkUpload groups the sequential upload of many items.
type BulkUpload struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"size:200" json:"name"`
	Status      BulkStatus     `gorm:"size:20;not null;index" json:"status"`
	Total       int            `json:"total"`
	Uploaded    int            `json:"uploaded"`
	Failed      int            `json:"failed"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	ErrorDetail string         `gorm:"type:text" json:"error_detail,omitempty"`
	Failures    datatypes.JSON `json:"failures,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TableName specifies the table name.
func (BulkUpload) TableName() string {
	return "hood_bulk_uploads"
}

// NewBulkUpload creates a pending bulk upload of total items.
func NewBulkUpload(name string, total int) *BulkUpload {
	return &BulkUpload{
		ID:     uuid.NewString(),
		Name:   name,
		Status: BulkStatusPending,
		Total:  total,
	}
}

// Start marks the bulk upload as processing.
func (b *BulkUpload) Start(now time.Time) {
	b.Status = BulkStatusProcessing
	b.StartedAt = &now
}

// Fail records a failed item.
func (b *BulkUpload) Fail(ref, msg string) {
	b.Failed++

	var failures []string
	if len(b.Failures) > 0 {
		_ = json.Unmarshal(b.Failures, &failures)
	}
	failures = append(failures, ref+": "+msg)
	if data, err := json.Marshal(failures); err == nil {
		b.Failures = datatypes.JSON(data)
	}
}

// FailureList decodes Failures.
func (b *BulkUpload) FailureList() []string {
	var failures []string
	if len(b.Failures) > 0 {
		_ = json.Unmarshal(b.Failures, &failures)
	}
	return failures
}

// Finish sets the terminal status. A bulk upload errors when it was interrupted or when no
// item made it.
func (b *BulkUpload) Finish(interrupted error, now time.Time) {
	b.CompletedAt = &now
	switch {
	case interrupted != nil:
		b.Status = BulkStatusError
		b.ErrorDetail = "bulk upload interrupted: " + interrupted.Error()
	case b.Total > 0 && b.Uploaded == 0:
		b.Status = BulkStatusError
		b.ErrorDetail = "no item was uploaded"
	default:
		b.Status = BulkStatusCompleted
	}
}
