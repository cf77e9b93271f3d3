package dashboard

import (
	"context"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/repository/unitofwork"
)

// Aggregator handles dashboard statistics
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats counts platforms and features by visibility, and comparisons
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{}
	var err error

	if stats.TotalPlatforms, err = uow.PlatformRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.PublishedPlatforms, err = uow.PlatformRepository().Count(ctx, specification.Published{}); err != nil {
		return nil, err
	}
	if stats.TotalFeatures, err = uow.FeatureRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.PublishedFeatures, err = uow.FeatureRepository().Count(ctx, specification.Published{}); err != nil {
		return nil, err
	}
	if stats.TotalComparisons, err = uow.ComparisonRepository().Count(ctx); err != nil {
		return nil, err
	}

	stats.DraftPlatforms = stats.TotalPlatforms - stats.PublishedPlatforms
	stats.DraftFeatures = stats.TotalFeatures - stats.PublishedFeatures

	a.logger.Debug("CATALOG", "Dashboard stats computed", map[string]interface{}{
		"platforms":   stats.TotalPlatforms,
		"features":    stats.TotalFeatures,
		"comparisons": stats.TotalComparisons,
	})

	return stats, nil
}
