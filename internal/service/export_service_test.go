package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"compare-audius-be/internal/config"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testSite = config.SiteConfig{URL: "https://compare.test", Name: "Audius Compare", DefaultCompetitor: "spotify"}

func newTestExports(t *testing.T) (*exportService, unitofwork.RepositoryFactory) {
	t.Helper()
	catalog, factory, _ := newTestCatalog(t)
	s := NewExportService(catalog, testSite, time.Hour, logger.NewNopLogger()).(*exportService)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s, factory
}

func TestExportService_LlmsTxt(t *testing.T) {
	s, _ := newTestExports(t)

	out, err := s.LlmsTxt(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "# Audius Compare - LLM Context")
	assert.Contains(t, out, "- `/` - Default comparison (Audius vs Spotify)")
	assert.Contains(t, out, "- `/spotify` - Audius vs Spotify comparison")
	assert.NotContains(t, out, "`/audius`")
}

func TestExportService_LlmsFullTxt(t *testing.T) {
	s, _ := newTestExports(t)

	out, err := s.LlmsFullTxt(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "- **Generated**: 2026-03-01T12:00:00Z")
	assert.Contains(t, out, "### 1. Free Uploads\nUpload for free")
	assert.Contains(t, out, "### Audius vs Spotify")
	assert.Contains(t, out, "| Free Uploads | YES | NO |")
	assert.Contains(t, out, "**Summary**: Audius leads on 1/1 features in this comparison.")
}

func TestExportService_CachesUntilExpiry(t *testing.T) {
	ctx := context.Background()
	s, factory := newTestExports(t)

	first, err := s.LlmsFullTxt(ctx)
	require.NoError(t, err)

	mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
		return tx.ComparisonRepository().Delete(ctx, "spotify-f1")
	})

	second, err := s.LlmsFullTxt(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "served from cache")

	s.cache.Flush()
	_, err = s.LlmsFullTxt(ctx)
	assert.Error(t, err, "regeneration sees the missing comparison")
}

func TestExportService_Sitemap(t *testing.T) {
	s, _ := newTestExports(t)

	out, err := s.Sitemap(context.Background())
	require.NoError(t, err)
	xml := string(out)
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://compare.test</loc>")
	assert.Contains(t, xml, "<loc>https://compare.test/spotify</loc>")
	assert.Contains(t, xml, "<lastmod>2026-03-01</lastmod>")
	assert.Contains(t, xml, "<priority>0.9</priority>")
	assert.NotContains(t, xml, "/audius<")
}

func TestExportService_Robots(t *testing.T) {
	s, _ := newTestExports(t)

	out := s.Robots()
	assert.Contains(t, out, "Disallow: /admin\n")
	assert.Contains(t, out, "Disallow: /api/\n")
	assert.Contains(t, out, "Sitemap: https://compare.test/sitemap.xml")
}

func TestExportService_ComparisonWorkbook(t *testing.T) {
	s, _ := newTestExports(t)

	data, err := s.ComparisonWorkbook(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(matrixSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Feature", "Slug", "Status", "Audius", "Spotify"}, rows[0])
	assert.Equal(t, []string{"Free Uploads", "free-uploads", "Published", "YES", "NO"}, rows[1])
}
