package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SyncStatus is the lifecycle state of a SyncRun.
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusError   SyncStatus = "error"
)

// SyncKindOrders marks runs that reconcile orders.
const SyncKindOrders = "orders"

// SyncRun records one reconciliation attempt.
type SyncRun struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Kind        string         `gorm:"size:20;not null;index" json:"kind"`
	Status      SyncStatus     `gorm:"size:20;not null;index" json:"status"`
	Found       int            `json:"found"`
	Created     int            `json:"created"`
	Updated     int            `json:"updated"`
	Failed      int            `json:"failed"`
	StartedAt   time.Time      `gorm:"not null;index" json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	DurationMs  int64          `json:"duration_ms"`
	ErrorDetail string         `gorm:"type:text" json:"error_detail,omitempty"`
	Failures    datatypes.JSON `json:"failures,omitempty"`
}

// TableName specifies the table name.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// NewSyncRun starts a pending run.
func NewSyncRun(kind string, now time.Time) *SyncRun {
	return &SyncRun{
		ID:        uuid.NewString(),
		Kind:      kind,
		Status:    SyncStatusPending,
		StartedAt: now,
	}
}

// Fail records a per-order failure.
func (r *SyncRun) Fail(orderID string, err error) {
	r.Failed++

	var failures []string
	if len(r.Failures) > 0 {
		_ = json.Unmarshal(r.Failures, &failures)
	}
	failures = append(failures, orderID+": "+err.Error())
	if data, mErr := json.Marshal(failures); mErr == nil {
		r.Failures = datatypes.JSON(data)
	}
}

// FailureList decodes Failures.
func (r *SyncRun) FailureList() []string {
	var failures []string
	if len(r.Failures) > 0 {
		_ = json.Unmarshal(r.Failures, &failures)
	}
	return failures
}

// Finish sets the terminal status and timing. Calling it on a finished run is a no-op.
func (r *SyncRun) Finish(status SyncStatus, detail string, now time.Time) {
	if r.Done() {
		return
	}
	r.Status = status
	if detail != "" {
		r.ErrorDetail = detail
	}
	r.CompletedAt = &now
	r.DurationMs = now.Sub(r.StartedAt).Milliseconds()
}

// Done reports whether the run was finalized.
func (r *SyncRun) Done() bool {
	return r.CompletedAt != nil
}

// Processed is the number of orders written or attempted.
func (r *SyncRun) Processed() int {
	return r.Created + r.Updated + r.Failed
}
