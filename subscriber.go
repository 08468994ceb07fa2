package geoaudit

import (
	"context"
	"strings"
	"time"
)

// Subscriber statuses.
const (
	SubscriberActive       = "active"
	SubscriberUnsubscribed = "unsubscribed"
)

// Subscriber is a newsletter subscription record keyed by email.
type Subscriber struct {
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// Validate returns an error if the subscriber contains invalid fields.
func (s *Subscriber) Validate() error {
	if !strings.Contains(s.Email, "@") {
		return Errorf(EINVALID, "valid email address required")
	}
	return nil
}

// SubscriberService manages newsletter subscriptions.
type SubscriberService interface {
	// Subscribe adds a new active subscriber.
	// Returns ECONFLICT if the email is already subscribed.
	Subscribe(ctx context.Context, email string) (*Subscriber, error)

	// Unsubscribe marks an existing subscriber as unsubscribed.
	// Returns ENOTFOUND if the email is unknown.
	Unsubscribe(ctx context.Context, email string) error

	// FindSubscriberByEmail retrieves a subscriber by email.
	// Returns ENOTFOUND if the email is unknown.
	FindSubscriberByEmail(ctx context.Context, email string) (*Subscriber, error)

	// FindSubscribers lists subscribers with the given status.
	// An empty status lists all subscribers.
	FindSubscribers(ctx context.Context, status string) ([]*Subscriber, error)
}
