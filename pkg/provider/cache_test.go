package provider

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := NewCache(path)
	require.NoError(t, err)

	_, ok, err := c.Get("http://provider/sessions/2024/1/R")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put("http://provider/sessions/2024/1/R", []byte(`{"a":1}`)))
	require.NoError(t, c.Put("http://provider/sessions/2024/1/R", []byte(`{"a":2}`)))

	body, ok, err := c.Get("http://provider/sessions/2024/1/R")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":2}`, string(body))

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, c.Close())

	// responses survive a restart
	c, err = NewCache(path)
	require.NoError(t, err)
	defer c.Close()
	body, ok, err = c.Get("http://provider/sessions/2024/1/R")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":2}`, string(body))
}

func TestCacheKeepsDistinctURLs(t *testing.T) {
	c, err := NewCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer c.Close()

	// both pairs share a 32-bit FNV-1a hash
	urls := []string{"costarring", "liquid", "declinate", "macallums"}
	for i, u := range urls {
		require.NoError(t, c.Put(u, []byte{byte('a' + i)}))
	}

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, len(urls), n)
	for i, u := range urls {
		body, ok, err := c.Get(u)
		require.NoError(t, err)
		require.True(t, ok, u)
		assert.Equal(t, []byte{byte('a' + i)}, body, u)
	}
}
