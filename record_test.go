package geoaudit_test

import (
	"testing"

	"github.com/kimmoihanus/geoaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()
		record := &geoaudit.AuditRecord{
			URL:    "https://example.com",
			Result: &geoaudit.GeneralAudit{},
		}
		require.NoError(t, record.Validate())
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()
		record := &geoaudit.AuditRecord{Result: &geoaudit.GeneralAudit{}}
		err := record.Validate()
		require.Error(t, err)
		assert.Equal(t, geoaudit.EINVALID, geoaudit.ErrorCode(err))
	})

	t.Run("missing result", func(t *testing.T) {
		t.Parallel()
		record := &geoaudit.AuditRecord{URL: "https://example.com"}
		err := record.Validate()
		require.Error(t, err)
		assert.Equal(t, geoaudit.EINVALID, geoaudit.ErrorCode(err))
	})
}

func TestSubscriber_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid email", func(t *testing.T) {
		t.Parallel()
		s := &geoaudit.Subscriber{Email: "someone@example.com"}
		require.NoError(t, s.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		s := &geoaudit.Subscriber{Email: "not-an-email"}
		err := s.Validate()
		require.Error(t, err)
		assert.Equal(t, geoaudit.EINVALID, geoaudit.ErrorCode(err))
	})
}
