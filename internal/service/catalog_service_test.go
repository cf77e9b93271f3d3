package service

import (
	"context"
	"testing"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/internal/testutil"
	"compare-audius-be/pkg/admin/dashboard"
	"compare-audius-be/pkg/admin/feature"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (ICatalogService, unitofwork.RepositoryFactory, *testutil.Scenario) {
	t.Helper()
	factory, _ := testutil.NewFactory(t)
	scenario := testutil.SeedScenario(t, factory)
	log := logger.NewNopLogger()
	return NewCatalogService(factory, log, feature.NewManager(), dashboard.NewAggregator(log)), factory, scenario
}

// mutate runs fn in its own transaction against the test database
func mutate(t *testing.T, factory unitofwork.RepositoryFactory, fn func(ctx context.Context, tx unitofwork.UnitOfWork) error) {
	t.Helper()
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		return fn(ctx, tx)
	}))
}

func TestCatalog_GetComparisonData(t *testing.T) {
	ctx := context.Background()
	catalog, _, scenario := newTestCatalog(t)

	rows, err := catalog.GetComparisonData(ctx, "spotify")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, scenario.Feature.Id, rows[0].Feature.Id)
	assert.Equal(t, entity.ComparisonStatusYes, rows[0].Audius.Status)
	assert.Equal(t, entity.ComparisonStatusNo, rows[0].Competitor.Status)
	assert.True(t, rows[0].AudiusLeads())
}

func TestCatalog_GetComparisonData_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown competitor", func(t *testing.T) {
		catalog, _, _ := newTestCatalog(t)
		_, err := catalog.GetComparisonData(ctx, "tidal")
		var unknown *apperror.UnknownCompetitorError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Unknown competitor: tidal", err.Error())
	})

	t.Run("audius is not a competitor", func(t *testing.T) {
		catalog, _, _ := newTestCatalog(t)
		_, err := catalog.GetComparisonData(ctx, "audius")
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("draft competitor", func(t *testing.T) {
		catalog, factory, scenario := newTestCatalog(t)
		mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
			scenario.Spotify.IsDraft = true
			return tx.PlatformRepository().Update(ctx, scenario.Spotify)
		})
		_, err := catalog.GetComparisonData(ctx, "spotify")
		var draft *apperror.DraftCompetitorError
		assert.ErrorAs(t, err, &draft)
	})

	t.Run("missing comparison on a published feature", func(t *testing.T) {
		catalog, factory, _ := newTestCatalog(t)
		mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
			return tx.ComparisonRepository().Delete(ctx, "spotify-f1")
		})
		_, err := catalog.GetComparisonData(ctx, "spotify")
		var missing *apperror.MissingComparisonError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Missing Spotify comparison for feature: Free Uploads", err.Error())
	})

	t.Run("missing audius platform", func(t *testing.T) {
		catalog, factory, _ := newTestCatalog(t)
		mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
			if _, err := tx.ComparisonRepository().DeleteByPlatform(ctx, "audius"); err != nil {
				return err
			}
			return tx.PlatformRepository().Delete(ctx, "audius")
		})
		_, err := catalog.GetComparisonData(ctx, "spotify")
		var notFound *apperror.AudiusNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestCatalog_DraftFeaturesAreHidden(t *testing.T) {
	ctx := context.Background()
	catalog, factory, _ := newTestCatalog(t)

	// a draft feature with no comparisons must not break the public table
	mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
		return tx.FeatureRepository().Create(ctx, &entity.Feature{
			Id: "f2", Name: "Lyrics", Slug: "lyrics", Description: "Synced lyrics", SortOrder: 2, IsDraft: true,
		})
	})

	rows, err := catalog.GetComparisonData(ctx, "spotify")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	published, err := catalog.GetFeatures(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 1)

	all, err := catalog.GetAllFeatures(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCatalog_FeaturesFollowSortOrder(t *testing.T) {
	ctx := context.Background()
	catalog, factory, _ := newTestCatalog(t)

	mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
		if err := tx.FeatureRepository().Create(ctx, &entity.Feature{
			Id: "f0", Name: "Offline", Slug: "offline", Description: "Downloads", SortOrder: 0,
		}); err != nil {
			return err
		}
		for _, c := range []*entity.Comparison{
			{Id: "audius-f0", PlatformId: "audius", FeatureId: "f0", Status: entity.ComparisonStatusPartial},
			{Id: "spotify-f0", PlatformId: "spotify", FeatureId: "f0", Status: entity.ComparisonStatusYes},
		} {
			if err := tx.ComparisonRepository().Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})

	rows, err := catalog.GetComparisonData(ctx, "spotify")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "f0", rows[0].Feature.Id)
	assert.Equal(t, "f1", rows[1].Feature.Id)
	assert.False(t, rows[0].AudiusLeads())
}

func TestCatalog_Competitors(t *testing.T) {
	ctx := context.Background()
	catalog, factory, scenario := newTestCatalog(t)

	slugs, err := catalog.GetCompetitorSlugs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"spotify"}, slugs)

	ok, err := catalog.IsValidCompetitor(ctx, "spotify")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = catalog.IsValidCompetitor(ctx, "audius")
	require.NoError(t, err)
	assert.False(t, ok)

	mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
		scenario.Spotify.IsDraft = true
		return tx.PlatformRepository().Update(ctx, scenario.Spotify)
	})

	slugs, err = catalog.GetCompetitorSlugs(ctx)
	require.NoError(t, err)
	assert.Empty(t, slugs)

	all, err := catalog.GetAllPlatforms(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCatalog_Lookups(t *testing.T) {
	ctx := context.Background()
	catalog, _, _ := newTestCatalog(t)

	audius, err := catalog.GetAudius(ctx)
	require.NoError(t, err)
	assert.Equal(t, "audius", audius.Slug)

	_, err = catalog.GetPlatform(ctx, "nope")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = catalog.GetFeatureById(ctx, "nope")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	f, err := catalog.GetFeature(ctx, "free-uploads")
	require.NoError(t, err)
	assert.Equal(t, "f1", f.Id)

	comparisons, err := catalog.GetAllComparisons(ctx, "f1")
	require.NoError(t, err)
	assert.Len(t, comparisons, 2)
}

func TestCatalog_DashboardStats(t *testing.T) {
	ctx := context.Background()
	catalog, factory, scenario := newTestCatalog(t)

	mutate(t, factory, func(ctx context.Context, tx unitofwork.UnitOfWork) error {
		scenario.Spotify.IsDraft = true
		return tx.PlatformRepository().Update(ctx, scenario.Spotify)
	})

	stats, err := catalog.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		TotalPlatforms:     2,
		PublishedPlatforms: 1,
		DraftPlatforms:     1,
		TotalFeatures:      1,
		PublishedFeatures:  1,
		TotalComparisons:   2,
	}, stats)
}
