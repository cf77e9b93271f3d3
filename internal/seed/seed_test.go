package seed_test

import (
	"context"
	"strings"
	"testing"

	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/seed"
	"compare-audius-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
platforms:
  - {id: audius, name: Audius, slug: audius, logo: "https://img.test/a.png", isAudius: true}
  - {id: spotify, name: Spotify, slug: spotify, logo: "https://img.test/s.png"}
features:
  - {id: uploads, name: Uploads, slug: uploads, description: Free uploads, sortOrder: 1}
comparisons:
  - {platform: audius, feature: uploads, status: "yes"}
  - {platform: spotify, feature: uploads, status: partial, context: paid tier, displayValue: ignored}
`

func loadFixture(t *testing.T) *seed.Fixture {
	t.Helper()
	f, err := seed.Load(strings.NewReader(fixtureYAML))
	require.NoError(t, err)
	return f
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := seed.Load(strings.NewReader("platforms:\n  - {id: a, colour: red}\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("valid fixture", func(t *testing.T) {
		assert.NoError(t, loadFixture(t).Validate())
	})

	t.Run("requires exactly one audius", func(t *testing.T) {
		f := loadFixture(t)
		f.Platforms[1].IsAudius = true
		err := f.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one Audius platform, found 2")
	})

	t.Run("rejects unknown references", func(t *testing.T) {
		f := loadFixture(t)
		f.Comparisons[1].Platform = "tidal"
		err := f.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid platform "tidal"`)
		assert.Contains(t, err.Error(), `missing comparison for platform "spotify"`)
	})

	t.Run("rejects bad status", func(t *testing.T) {
		f := loadFixture(t)
		f.Comparisons[0].Status = "maybe"
		assert.ErrorContains(t, f.Validate(), `invalid status "maybe"`)
	})

	t.Run("rejects duplicate slugs", func(t *testing.T) {
		f := loadFixture(t)
		f.Platforms[1].Slug = "audius"
		assert.ErrorContains(t, f.Validate(), "duplicate slug")
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	factory, _ := testutil.NewFactory(t)
	testutil.SeedScenario(t, factory)

	summary, err := seed.Apply(ctx, factory, loadFixture(t))
	require.NoError(t, err)
	assert.Equal(t, &seed.Summary{Platforms: 2, Features: 1, Comparisons: 2}, summary)

	uow := factory.NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, features, 1, "previous catalog is replaced")
	assert.Equal(t, "uploads", features[0].Id)
	assert.False(t, features[0].IsDraft)

	platforms, err := uow.PlatformRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, platforms, 2)
	for _, p := range platforms {
		assert.False(t, p.IsDraft, p.Slug)
	}

	c, err := uow.ComparisonRepository().FindOne(ctx, specification.ByID{ID: "spotify-uploads"})
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NotNil(t, c.Context)
	assert.Equal(t, "paid tier", *c.Context)
	assert.Nil(t, c.DisplayValue, "display value only survives on custom")
}

func TestApply_InvalidFixtureWritesNothing(t *testing.T) {
	ctx := context.Background()
	factory, _ := testutil.NewFactory(t)
	testutil.SeedScenario(t, factory)

	f := loadFixture(t)
	f.Comparisons = f.Comparisons[:1]
	_, err := seed.Apply(ctx, factory, f)
	require.Error(t, err)

	count, err := factory.NewUnitOfWork(ctx).FeatureRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	p, err := factory.NewUnitOfWork(ctx).PlatformRepository().FindOne(ctx, specification.ByID{ID: "spotify"})
	require.NoError(t, err)
	assert.Equal(t, "Spotify", p.Name)
}
