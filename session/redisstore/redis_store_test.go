package redisstore_test

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-admin-dashboard/session"
	"github.com/jrsteele09/go-admin-dashboard/session/redisstore"
	"github.com/stretchr/testify/require"
)

// Runs against a real server only when REDIS_ADDR is set.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	store, err := redisstore.Dial(addr, os.Getenv("REDIS_PASSWORD"), 0,
		redisstore.WithPrefix("dashboard-test:"+uuid.New().String()+":"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Get("accessToken")
	require.ErrorIs(t, err, session.ErrNotFound)

	creds := session.NewCredentials(store)
	refresh := "refresh"
	require.NoError(t, creds.SetTokens("access", &refresh))
	require.Equal(t, session.Session{AccessToken: "access", RefreshToken: "refresh"}, creds.Snapshot())

	require.NoError(t, creds.Clear())
	require.Equal(t, session.Session{}, creds.Snapshot())
}

func TestDial_Unreachable(t *testing.T) {
	_, err := redisstore.Dial("127.0.0.1:1", "", 0)
	require.Error(t, err)
}
