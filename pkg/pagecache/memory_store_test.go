package pagecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	require.NoError(t, store.Set(ctx, "/spotify", &Entry{ContentType: "text/html", Body: []byte("<html>")}, 0))

	entry, ok, err := store.Get(ctx, "/spotify")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "<html>", string(entry.Body))

	require.NoError(t, store.Delete(ctx, "/spotify", "/missing"))
	_, ok, err = store.Get(ctx, "/spotify")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	require.NoError(t, store.Set(ctx, "/", &Entry{Body: []byte("home")}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, ok, err := store.Get(ctx, "/")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Flush(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	require.NoError(t, store.Set(ctx, "/a", &Entry{}, 0))
	require.NoError(t, store.Set(ctx, "/b", &Entry{}, 0))

	require.NoError(t, store.Flush(ctx))

	_, ok, _ := store.Get(ctx, "/a")
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, "/b")
	assert.False(t, ok)
}
