// Package testutil opens migrated SQLite databases for package tests.
package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/model"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated database in a temp dir that is removed with the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", filepath.Join(t.TempDir(), "catalog.db"))
	db, err := database.NewGormDB(database.GormConfig{
		Driver:   database.DriverSQLite,
		DSN:      dsn,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewFactory is NewDB wrapped in a repository factory.
func NewFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	db := NewDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

// Scenario is the smallest published catalog: Audius and Spotify sharing one
// feature, Audius "yes" and Spotify "no".
type Scenario struct {
	Audius  *entity.Platform
	Spotify *entity.Platform
	Feature *entity.Feature
	AudiusF1 *entity.Comparison
	SpotifyF1 *entity.Comparison
}

func SeedScenario(t *testing.T, factory unitofwork.RepositoryFactory) *Scenario {
	t.Helper()
	ctx := context.Background()

	s := &Scenario{
		Audius:  &entity.Platform{Id: "audius", Name: "Audius", Slug: "audius", Logo: "https://img.test/audius.png", IsAudius: true},
		Spotify: &entity.Platform{Id: "spotify", Name: "Spotify", Slug: "spotify", Logo: "https://img.test/spotify.png"},
		Feature: &entity.Feature{Id: "f1", Name: "Free Uploads", Slug: "free-uploads", Description: "Upload for free", SortOrder: 1},
	}
	s.AudiusF1 = &entity.Comparison{Id: "audius-f1", PlatformId: "audius", FeatureId: "f1", Status: entity.ComparisonStatusYes}
	s.SpotifyF1 = &entity.Comparison{Id: "spotify-f1", PlatformId: "spotify", FeatureId: "f1", Status: entity.ComparisonStatusNo}

	uow := factory.NewUnitOfWork(ctx)
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		for _, p := range []*entity.Platform{s.Audius, s.Spotify} {
			if err := tx.PlatformRepository().Create(ctx, p); err != nil {
				return err
			}
		}
		if err := tx.FeatureRepository().Create(ctx, s.Feature); err != nil {
			return err
		}
		for _, c := range []*entity.Comparison{s.AudiusF1, s.SpotifyF1} {
			if err := tx.ComparisonRepository().Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	return s
}
