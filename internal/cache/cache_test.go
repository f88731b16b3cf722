package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute), mr
}

func TestFetchJSONCachesUntilBump(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return map[string]any{"calls": calls}, nil
	}

	key, err := c.Key(ctx, "sales", "company")
	require.NoError(t, err)
	assert.Equal(t, "dashboard:sales:company:v1", key)

	var got map[string]int
	require.NoError(t, c.FetchJSON(ctx, key, &got, loader))
	require.NoError(t, c.FetchJSON(ctx, key, &got, loader))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, got["calls"])

	require.NoError(t, c.Bump(ctx))
	key, err = c.Key(ctx, "sales", "company")
	require.NoError(t, err)
	assert.Equal(t, "dashboard:sales:company:v2", key)

	require.NoError(t, c.FetchJSON(ctx, key, &got, loader))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, got["calls"])
}

func TestFetchJSONExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return []int{calls}, nil
	}

	var got []int
	require.NoError(t, c.FetchJSON(ctx, "k", &got, loader))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, c.FetchJSON(ctx, "k", &got, loader))
	assert.Equal(t, 2, calls)
}

func TestFetchJSONDoesNotCacheErrors(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got []int
	err := c.FetchJSON(ctx, "k", &got, func(context.Context) (any, error) {
		return nil, errors.New("upstream down")
	})
	require.Error(t, err)
	assert.False(t, mr.Exists("k"))
}

func TestNilCacheCallsLoader(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	key, err := c.Key(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "dashboard:a:b", key)

	var got string
	require.NoError(t, c.FetchJSON(ctx, key, &got, func(context.Context) (any, error) { return "fresh", nil }))
	assert.Equal(t, "fresh", got)
	assert.NoError(t, c.Bump(ctx))
}
