package sqlite_test

import (
	"context"
	"testing"

	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberService_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("creates active subscriber", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSubscriberService(db)
		ctx := context.Background()

		sub, err := svc.Subscribe(ctx, "Someone@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "someone@example.com", sub.Email, "email is normalized")
		assert.Equal(t, geoaudit.SubscriberActive, sub.Status)
		assert.False(t, sub.SubscribedAt.IsZero())
	})

	t.Run("duplicate subscription conflicts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSubscriberService(db)
		ctx := context.Background()

		_, err := svc.Subscribe(ctx, "someone@example.com")
		require.NoError(t, err)

		_, err = svc.Subscribe(ctx, "someone@example.com")
		require.Error(t, err)
		assert.Equal(t, geoaudit.ECONFLICT, geoaudit.ErrorCode(err))
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSubscriberService(db)

		_, err := svc.Subscribe(context.Background(), "nope")
		require.Error(t, err)
		assert.Equal(t, geoaudit.EINVALID, geoaudit.ErrorCode(err))
	})

	t.Run("unsubscribed email can resubscribe", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSubscriberService(db)
		ctx := context.Background()

		_, err := svc.Subscribe(ctx, "someone@example.com")
		require.NoError(t, err)
		require.NoError(t, svc.Unsubscribe(ctx, "someone@example.com"))

		sub, err := svc.Subscribe(ctx, "someone@example.com")
		require.NoError(t, err)
		assert.Equal(t, geoaudit.SubscriberActive, sub.Status)
	})
}

func TestSubscriberService_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("marks subscriber unsubscribed", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSubscriberService(db)
		ctx := context.Background()

		_, err := svc.Subscribe(ctx, "someone@example.com")
		require.NoError(t, err)
		require.NoError(t, svc.Unsubscribe(ctx, "someone@example.com"))

		sub, err := svc.FindSubscriberByEmail(ctx, "someone@example.com")
		require.NoError(t, err)
		assert.Equal(t, geoaudit.SubscriberUnsubscribed, sub.Status)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSubscriberService(db)

		err := svc.Unsubscribe(context.Background(), "missing@example.com")
		require.Error(t, err)
		assert.Equal(t, geoaudit.ENOTFOUND, geoaudit.ErrorCode(err))
	})
}

func TestSubscriberService_FindSubscribers(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewSubscriberService(db)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "a@example.com")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, "b@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(ctx, "b@example.com"))

	active, err := svc.FindSubscribers(ctx, geoaudit.SubscriberActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a@example.com", active[0].Email)

	all, err := svc.FindSubscribers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
