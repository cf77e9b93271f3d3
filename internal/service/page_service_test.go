package service

import (
	"context"
	"testing"
	"time"

	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/internal/web"
	"compare-audius-be/pkg/pagecache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPages(t *testing.T, site string) (IPageService, pagecache.Store, unitofwork.RepositoryFactory) {
	t.Helper()
	catalog, factory, _ := newTestCatalog(t)
	store := pagecache.NewMemoryStore(time.Hour)
	cfg := testSite
	cfg.DefaultCompetitor = site
	return NewPageService(catalog, store, web.MustNewRenderer(), cfg, time.Hour, logger.NewNopLogger()), store, factory
}

func TestPageService_RendersCompetitorPage(t *testing.T) {
	ctx := context.Background()
	pages, store, _ := newTestPages(t, "spotify")

	entry, err := pages.Page(ctx, "/spotify")
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", entry.ContentType)

	html := string(entry.Body)
	assert.Contains(t, html, "<title>Audius vs Spotify | Audius Compare</title>")
	assert.Contains(t, html, `class="status-yes"`)
	assert.Contains(t, html, `class="status-no"`)
	assert.Contains(t, html, "Audius leads on 1/1 features.")

	cached, ok, err := store.Get(ctx, "/spotify")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry.Body, cached.Body)
}

func TestPageService_HomeFallsBackToFirstCompetitor(t *testing.T) {
	ctx := context.Background()
	pages, _, _ := newTestPages(t, "soundcloud")

	entry, err := pages.Page(ctx, "/")
	require.NoError(t, err)
	assert.Contains(t, string(entry.Body), "Audius vs Spotify")
}

func TestPageService_ServesCacheUntilWarmed(t *testing.T) {
	ctx := context.Background()
	pages, _, factory := newTestPages(t, "spotify")

	_, err := pages.Page(ctx, "/spotify")
	require.NoError(t, err)

	mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
		spotify, err := tx.PlatformRepository().FindOne(ctx, specification.BySlug{Slug: "spotify"})
		if err != nil {
			return err
		}
		spotify.Name = "Spotify Premium"
		return tx.PlatformRepository().Update(ctx, spotify)
	})

	stale, err := pages.Page(ctx, "/spotify")
	require.NoError(t, err)
	assert.NotContains(t, string(stale.Body), "Spotify Premium")

	require.NoError(t, pages.Warm(ctx, "/spotify"))
	fresh, err := pages.Page(ctx, "/spotify")
	require.NoError(t, err)
	assert.Contains(t, string(fresh.Body), "Audius vs Spotify Premium")
}

func TestPageService_Errors(t *testing.T) {
	ctx := context.Background()
	pages, store, _ := newTestPages(t, "spotify")

	_, err := pages.Page(ctx, "/tidal")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = pages.Page(ctx, "/audius")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, ok, err := store.Get(ctx, "/tidal")
	require.NoError(t, err)
	assert.False(t, ok, "failures are not cached")
}
