package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, ttl), mr
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "key", &payload{Name: "demo", Count: 3}))

	var got payload
	hit, err := c.GetJSON(ctx, "key", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "demo", Count: 3}, got)
}

func TestCache_MissIsNotAnError(t *testing.T) {
	c, _ := newTestCache(t, 5*time.Minute)

	var got payload
	hit, err := c.GetJSON(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "key", &payload{Name: "demo"}))

	// Проматываем время за пределы TTL
	mr.FastForward(6 * time.Minute)

	var got payload
	hit, err := c.GetJSON(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "key", &payload{Name: "demo"}))
	require.NoError(t, c.Delete(ctx, "key"))

	var got payload
	hit, err := c.GetJSON(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
