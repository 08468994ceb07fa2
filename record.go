package geoaudit

import (
	"context"
	"time"
)

// AuditRecord is a persisted general audit result.
type AuditRecord struct {
	ID           string        `json:"id"`
	URL          string        `json:"url"`
	OverallScore int           `json:"overallScore"`
	Grade        string        `json:"grade"`
	Result       *GeneralAudit `json:"result"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *AuditRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "audit record URL required")
	}
	if r.Result == nil {
		return Errorf(EINVALID, "audit record result required")
	}
	return nil
}

// AuditRecordFilter filters stored audit records.
type AuditRecordFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// AuditService persists and retrieves audit history.
type AuditService interface {
	// CreateAuditRecord stores a new audit record.
	CreateAuditRecord(ctx context.Context, record *AuditRecord) error

	// FindAuditRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindAuditRecordByID(ctx context.Context, id string) (*AuditRecord, error)

	// FindAuditRecords retrieves records matching the filter, newest first.
	FindAuditRecords(ctx context.Context, filter AuditRecordFilter) ([]*AuditRecord, error)
}
