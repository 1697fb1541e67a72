package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"relay/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ fiber.Storage = (*RedisStorage)(nil)

// newTestStorage connects to the Redis named by REDIS_HOST and skips otherwise.
func newTestStorage(t *testing.T) *RedisStorage {
	t.Helper()
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		t.Skip("REDIS_HOST not set")
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client := NewRedisClient(config.RedisConfig{Host: host, Port: port})
	s := NewRedisStorage(client, "relay:test:"+t.Name()+":")
	require.NoError(t, s.HealthCheck(context.Background()))

	t.Cleanup(func() {
		_ = s.Reset()
		_ = s.Close()
	})
	return s
}

func TestNewRedisStorage_DefaultPrefix(t *testing.T) {
	s := NewRedisStorage(nil, "")
	assert.Equal(t, DefaultKeyPrefix+"k", s.key("k"))
}

func TestRedisStorage_EmptyKeysAreNoops(t *testing.T) {
	s := NewRedisStorage(nil, "")

	val, err := s.Get("")
	assert.NoError(t, err)
	assert.Nil(t, val)
	assert.NoError(t, s.Set("", []byte("x"), time.Minute))
	assert.NoError(t, s.Set("k", nil, time.Minute))
	assert.NoError(t, s.Delete(""))
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	s := newTestStorage(t)

	val, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("hits", []byte("3"), time.Minute))
	val, err = s.Get("hits")
	require.NoError(t, err)
	assert.Equal(t, "3", string(val))

	require.NoError(t, s.Delete("hits"))
	val, err = s.Get("hits")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("a", []byte("1"), time.Minute))
	require.NoError(t, s.Set("b", []byte("2"), time.Minute))
	require.NoError(t, s.Reset())
	val, err = s.Get("a")
	require.NoError(t, err)
	assert.Nil(t, val)
}
