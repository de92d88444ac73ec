package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationList_NoClientIsNoop(t *testing.T) {
	SetClient(nil)
	list := NewRevocationList()
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "jti-1", time.Hour))
	revoked, err := list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationList_RevokeUntilExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = Close() })

	list := NewRevocationList()
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "jti-1", time.Minute))
	revoked, err := list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	other, err := list.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, other)

	mr.FastForward(2 * time.Minute)
	revoked, err = list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationList_IgnoresExpiredAndEmpty(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = Close() })

	list := NewRevocationList()
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "jti-1", 0))
	require.NoError(t, list.Revoke(ctx, "", time.Minute))
	assert.Empty(t, mr.Keys())

	revoked, err := list.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationList_StoreErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	origSet, origExists := setRevokedValue, existsRevokedValue
	t.Cleanup(func() {
		setRevokedValue, existsRevokedValue = origSet, origExists
		_ = Close()
	})

	setRevokedValue = func(context.Context, string, interface{}, time.Duration) error {
		return errors.New("set failed")
	}
	existsRevokedValue = func(context.Context, string) (bool, error) {
		return false, errors.New("exists failed")
	}

	list := NewRevocationList()
	assert.Error(t, list.Revoke(context.Background(), "jti", time.Minute))
	_, err := list.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}
