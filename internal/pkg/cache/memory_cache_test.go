package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	var got []string
	found, err := c.Get(ctx, "colors", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "colors", []string{"Azul", "Verde"}, time.Minute))

	found, err = c.Get(ctx, "colors", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Azul", "Verde"}, got)

	require.NoError(t, c.Delete(ctx, "colors", "missing"))
	found, err = c.Get(ctx, "colors", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	values := []string{"Azul"}
	require.NoError(t, c.Set(ctx, "k", values, time.Minute))
	values[0] = "Rojo"

	var got []string
	_, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.Equal(t, []string{"Azul"}, got)
}

func TestMemoryCacheExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))

	assert.Eventually(t, func() bool {
		var got string
		found, _ := c.Get(ctx, "k", &got)
		return !found
	}, time.Second, 20*time.Millisecond)
}
