package mock

import (
	"context"

	"github.com/kimmoihanus/geoaudit"
)

var _ geoaudit.AuditService = (*AuditService)(nil)

// AuditService is a mock implementation of geoaudit.AuditService.
type AuditService struct {
	CreateAuditRecordFn   func(ctx context.Context, record *geoaudit.AuditRecord) error
	FindAuditRecordByIDFn func(ctx context.Context, id string) (*geoaudit.AuditRecord, error)
	FindAuditRecordsFn    func(ctx context.Context, filter geoaudit.AuditRecordFilter) ([]*geoaudit.AuditRecord, error)
}

func (s *AuditService) CreateAuditRecord(ctx context.Context, record *geoaudit.AuditRecord) error {
	return s.CreateAuditRecordFn(ctx, record)
}

func (s *AuditService) FindAuditRecordByID(ctx context.Context, id string) (*geoaudit.AuditRecord, error) {
	return s.FindAuditRecordByIDFn(ctx, id)
}

func (s *AuditService) FindAuditRecords(ctx context.Context, filter geoaudit.AuditRecordFilter) ([]*geoaudit.AuditRecord, error) {
	return s.FindAuditRecordsFn(ctx, filter)
}

var _ geoaudit.SubscriberService = (*SubscriberService)(nil)

// SubscriberService is a mock implementation of geoaudit.SubscriberService.
type SubscriberService struct {
	SubscribeFn             func(ctx context.Context, email string) (*geoaudit.Subscriber, error)
	UnsubscribeFn           func(ctx context.Context, email string) error
	FindSubscriberByEmailFn func(ctx context.Context, email string) (*geoaudit.Subscriber, error)
	FindSubscribersFn       func(ctx context.Context, status string) ([]*geoaudit.Subscriber, error)
}

func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*geoaudit.Subscriber, error) {
	return s.SubscribeFn(ctx, email)
}

func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	return s.UnsubscribeFn(ctx, email)
}

func (s *SubscriberService) FindSubscriberByEmail(ctx context.Context, email string) (*geoaudit.Subscriber, error) {
	return s.FindSubscriberByEmailFn(ctx, email)
}

func (s *SubscriberService) FindSubscribers(ctx context.Context, status string) ([]*geoaudit.Subscriber, error) {
	return s.FindSubscribersFn(ctx, status)
}
