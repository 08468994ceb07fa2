package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kimmoihanus/geoaudit"
)

// Compile-time interface verification.
var _ geoaudit.AuditService = (*AuditService)(nil)

// AuditService implements geoaudit.AuditService using SQLite.
type AuditService struct {
	db *DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *DB) *AuditService {
	return &AuditService{db: db}
}

// CreateAuditRecord stores a new audit record.
func (s *AuditService) CreateAuditRecord(ctx context.Context, record *geoaudit.AuditRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to encode audit result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audits (id, url, overall_score, grade, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.URL, record.OverallScore, record.Grade, string(result),
		record.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAuditRecordByID retrieves an audit record by ID.
func (s *AuditService) FindAuditRecordByID(ctx context.Context, id string) (*geoaudit.AuditRecord, error) {
	var record geoaudit.AuditRecord
	var result, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, overall_score, grade, result, created_at
		FROM audits
		WHERE id = ?
	`, id).Scan(&record.ID, &record.URL, &record.OverallScore, &record.Grade, &result, &createdAt)

	if err == sql.ErrNoRows {
		return nil, geoaudit.Errorf(geoaudit.ENOTFOUND, "audit record not found")
	}
	if err != nil {
		return nil, err
	}

	if err := s.decodeRow(&record, result, createdAt); err != nil {
		return nil, err
	}

	return &record, nil
}

// FindAuditRecords retrieves audit records matching the filter, newest first.
func (s *AuditService) FindAuditRecords(ctx context.Context, filter geoaudit.AuditRecordFilter) ([]*geoaudit.AuditRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, overall_score, grade, result, created_at FROM audits WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*geoaudit.AuditRecord
	for rows.Next() {
		var record geoaudit.AuditRecord
		var result, createdAt string

		if err := rows.Scan(&record.ID, &record.URL, &record.OverallScore, &record.Grade, &result, &createdAt); err != nil {
			return nil, err
		}

		if err := s.decodeRow(&record, result, createdAt); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

func (s *AuditService) decodeRow(record *geoaudit.AuditRecord, result, createdAt string) error {
	if err := json.Unmarshal([]byte(result), &record.Result); err != nil {
		return fmt.Errorf("failed to decode audit result: %w", err)
	}

	var parseErr error
	record.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return fmt.Errorf("failed to parse created_at: %w", parseErr)
	}

	return nil
}
