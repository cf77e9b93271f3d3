package implementation_test

import (
	"context"
	"testing"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformRepository(t *testing.T) {
	ctx := context.Background()
	factory, _ := testutil.NewFactory(t)
	testutil.SeedScenario(t, factory)
	repo := factory.NewUnitOfWork(ctx).PlatformRepository()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "audius", all[0].Slug, "Audius sorts first")

	err = repo.Create(ctx, &entity.Platform{Id: "dup", Name: "Dup", Slug: "spotify", Logo: "x"})
	var dup *apperror.DuplicateSlugError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "platform", dup.Resource)

	missing, err := repo.FindOne(ctx, specification.BySlug{Slug: "tidal"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	n, err := repo.Count(ctx, specification.Published{}, specification.NotAudius{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPlatformRepository_DraftFlagRoundTrips(t *testing.T) {
	ctx := context.Background()
	factory, _ := testutil.NewFactory(t)
	repo := factory.NewUnitOfWork(ctx).PlatformRepository()

	require.NoError(t, repo.Create(ctx, &entity.Platform{Id: "p1", Name: "A", Slug: "a", Logo: "x", IsDraft: true}))
	require.NoError(t, repo.Create(ctx, &entity.Platform{Id: "p2", Name: "B", Slug: "b", Logo: "x", IsDraft: false}))

	drafts, err := repo.Count(ctx, specification.Drafts{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), drafts)
}

func TestFeatureRepository_SortOrder(t *testing.T) {
	ctx := context.Background()
	factory, _ := testutil.NewFactory(t)
	repo := factory.NewUnitOfWork(ctx).FeatureRepository()

	max, err := repo.MaxSortOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	require.NoError(t, repo.Create(ctx, &entity.Feature{Id: "a", Name: "A", Slug: "a", Description: "a", SortOrder: 3}))
	require.NoError(t, repo.Create(ctx, &entity.Feature{Id: "b", Name: "B", Slug: "b", Description: "b", SortOrder: 7}))

	max, err = repo.MaxSortOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, max)

	require.NoError(t, repo.UpdateSortOrder(ctx, "b", 1))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", all[0].Id)

	err = repo.UpdateSortOrder(ctx, "missing", 1)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestComparisonRepository_Constraints(t *testing.T) {
	ctx := context.Background()
	factory, _ := testutil.NewFactory(t)
	testutil.SeedScenario(t, factory)
	repo := factory.NewUnitOfWork(ctx).ComparisonRepository()

	err := repo.Create(ctx, &entity.Comparison{Id: "again", PlatformId: "spotify", FeatureId: "f1", Status: entity.ComparisonStatusYes})
	var dup *apperror.DuplicateComparisonError
	assert.ErrorAs(t, err, &dup)

	err = repo.Create(ctx, &entity.Comparison{Id: "orphan", PlatformId: "tidal", FeatureId: "f1", Status: entity.ComparisonStatusYes})
	assert.Error(t, err)

	deleted, err := repo.DeleteByFeature(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
