package auth

import (
	"testing"
	"time"

	testingpkg "github.com/miguelofoliveir/pandafit-frontend/pkg/testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RealRedis(t *testing.T) {
	ctx, rdb := testingpkg.GetRedisClientAndCtx(t)

	userID := gofakeit.Username()
	name := gofakeit.Name()
	authService := NewAuthService(time.Minute, rdb, &testAuthenticator{name: name})

	record, err := authService.Login(ctx, userID, gofakeit.Password(true, true, true, false, false, 12))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = authService.Logout(ctx, record.Token)
	})

	ttl, err := rdb.TTL(ctx, sessionKey(record.Token)).Result()
	require.NoError(t, err)
	assert.InDelta(t, time.Minute.Seconds(), ttl.Seconds(), 2)

	isMember, err := rdb.SIsMember(ctx, tokensSetKey, record.Token).Result()
	require.NoError(t, err)
	assert.True(t, isMember)

	got, err := authService.Lookup(ctx, record.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, got.User.ID)
	assert.Equal(t, name, got.User.Name)

	existed, err := authService.Logout(ctx, record.Token)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = authService.Lookup(ctx, record.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
