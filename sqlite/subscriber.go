package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kimmoihanus/geoaudit"
)

// Compile-time interface verification.
var _ geoaudit.SubscriberService = (*SubscriberService)(nil)

// SubscriberService implements geoaudit.SubscriberService using SQLite.
type SubscriberService struct {
	db *DB
}

// NewSubscriberService creates a new SubscriberService.
func NewSubscriberService(db *DB) *SubscriberService {
	return &SubscriberService{db: db}
}

// Subscribe adds a new active subscriber.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*geoaudit.Subscriber, error) {
	subscriber := &geoaudit.Subscriber{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Status:       geoaudit.SubscriberActive,
		SubscribedAt: time.Now().UTC(),
	}
	if err := subscriber.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.FindSubscriberByEmail(ctx, subscriber.Email)
	if err != nil && geoaudit.ErrorCode(err) != geoaudit.ENOTFOUND {
		return nil, err
	}
	if existing != nil && existing.Status == geoaudit.SubscriberActive {
		return nil, geoaudit.Errorf(geoaudit.ECONFLICT, "already subscribed")
	}

	// A previously unsubscribed email is reactivated.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO subscribers (email, status, subscribed_at)
		VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET status = excluded.status, subscribed_at = excluded.subscribed_at
	`, subscriber.Email, subscriber.Status, subscriber.SubscribedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return subscriber, nil
}

// Unsubscribe marks an existing subscriber as unsubscribed.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE subscribers SET status = ? WHERE email = ?
	`, geoaudit.SubscriberUnsubscribed, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return geoaudit.Errorf(geoaudit.ENOTFOUND, "subscriber not found")
	}

	return nil
}

// FindSubscriberByEmail retrieves a subscriber by email.
func (s *SubscriberService) FindSubscriberByEmail(ctx context.Context, email string) (*geoaudit.Subscriber, error) {
	var subscriber geoaudit.Subscriber
	var subscribedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT email, status, subscribed_at
		FROM subscribers
		WHERE email = ?
	`, strings.ToLower(strings.TrimSpace(email))).Scan(&subscriber.Email, &subscriber.Status, &subscribedAt)

	if err == sql.ErrNoRows {
		return nil, geoaudit.Errorf(geoaudit.ENOTFOUND, "subscriber not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	subscriber.SubscribedAt, parseErr = time.Parse(time.RFC3339, subscribedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse subscribed_at: %w", parseErr)
	}

	return &subscriber, nil
}

// FindSubscribers lists subscribers with the given status.
func (s *SubscriberService) FindSubscribers(ctx context.Context, status string) ([]*geoaudit.Subscriber, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT email, status, subscribed_at FROM subscribers WHERE 1=1")
	if status != "" {
		query.WriteString(" AND status = ?")
		args = append(args, status)
	}
	query.WriteString(" ORDER BY subscribed_at DESC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []*geoaudit.Subscriber
	for rows.Next() {
		var subscriber geoaudit.Subscriber
		var subscribedAt string

		if err := rows.Scan(&subscriber.Email, &subscriber.Status, &subscribedAt); err != nil {
			return nil, err
		}

		var parseErr error
		subscriber.SubscribedAt, parseErr = time.Parse(time.RFC3339, subscribedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse subscribed_at: %w", parseErr)
		}

		subscribers = append(subscribers, &subscriber)
	}

	return subscribers, rows.Err()
}
