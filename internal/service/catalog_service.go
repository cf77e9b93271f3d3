// FILE: internal/service/catalog_service.go
// Read path for the public site, exports and admin views
package service

import (
	"context"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/pkg/admin/dashboard"
	"compare-audius-be/pkg/admin/feature"
)

type ICatalogService interface {
	GetPlatforms(ctx context.Context) ([]*entity.Platform, error)
	GetAllPlatforms(ctx context.Context) ([]*entity.Platform, error)
	GetPlatform(ctx context.Context, slug string) (*entity.Platform, error)
	GetPlatformById(ctx context.Context, id string) (*entity.Platform, error)
	GetAudius(ctx context.Context) (*entity.Platform, error)
	GetCompetitors(ctx context.Context) ([]*entity.Platform, error)
	GetCompetitorSlugs(ctx context.Context) ([]string, error)
	IsValidCompetitor(ctx context.Context, slug string) (bool, error)

	GetFeatures(ctx context.Context) ([]*entity.Feature, error)
	GetAllFeatures(ctx context.Context) ([]*entity.Feature, error)
	GetFeature(ctx context.Context, slug string) (*entity.Feature, error)
	GetFeatureById(ctx context.Context, id string) (*entity.Feature, error)
	GetFeatureCompleteness(ctx context.Context) ([]*entity.FeatureCompleteness, error)

	GetAllComparisons(ctx context.Context, featureId string) ([]*entity.Comparison, error)
	GetComparisonData(ctx context.Context, competitorSlug string) ([]*entity.FeatureComparison, error)

	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}

type catalogService struct {
	uowFactory          unitofwork.RepositoryFactory
	logger              logger.ILogger
	featureManager      *feature.Manager
	dashboardAggregator *dashboard.Aggregator
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	featureManager *feature.Manager,
	dashboardAggregator *dashboard.Aggregator,
) ICatalogService {
	return &catalogService{
		uowFactory:          uowFactory,
		logger:              logger,
		featureManager:      featureManager,
		dashboardAggregator: dashboardAggregator,
	}
}

// ============================================================================
// Platforms
// ============================================================================

func (s *catalogService) GetPlatforms(ctx context.Context) ([]*entity.Platform, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PlatformRepository().FindAll(ctx, specification.Published{})
}

func (s *catalogService) GetAllPlatforms(ctx context.Context) ([]*entity.Platform, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PlatformRepository().FindAll(ctx)
}

func (s *catalogService) GetPlatform(ctx context.Context, slug string) (*entity.Platform, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	platform, err := uow.PlatformRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if platform == nil {
		return nil, apperror.NotFound("Platform not found")
	}
	return platform, nil
}

func (s *catalogService) GetPlatformById(ctx context.Context, id string) (*entity.Platform, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	platform, err := uow.PlatformRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if platform == nil {
		return nil, apperror.NotFound("Platform not found")
	}
	return platform, nil
}

// GetAudius fails with AudiusNotFoundError when no platform carries the
// flag. Every comparison is made against this record.
func (s *catalogService) GetAudius(ctx context.Context) (*entity.Platform, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.findAudius(ctx, uow)
}

func (s *catalogService) findAudius(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.Platform, error) {
	audius, err := uow.PlatformRepository().FindOne(ctx, specification.AudiusPlatform{})
	if err != nil {
		return nil, err
	}
	if audius == nil {
		s.logger.Error("CATALOG", "Audius platform missing", nil)
		return nil, &apperror.AudiusNotFoundError{}
	}
	return audius, nil
}

func (s *catalogService) GetCompetitors(ctx context.Context) ([]*entity.Platform, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PlatformRepository().FindAll(ctx, specification.Published{}, specification.NotAudius{})
}

func (s *catalogService) GetCompetitorSlugs(ctx context.Context) ([]string, error) {
	competitors, err := s.GetCompetitors(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(competitors))
	for _, c := range competitors {
		slugs = append(slugs, c.Slug)
	}
	return slugs, nil
}

func (s *catalogService) IsValidCompetitor(ctx context.Context, slug string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.PlatformRepository().Count(ctx,
		specification.BySlug{Slug: slug},
		specification.Published{},
		specification.NotAudius{},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ============================================================================
// Features
// ============================================================================

func (s *catalogService) GetFeatures(ctx context.Context) ([]*entity.Feature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeatureRepository().FindAll(ctx, specification.Published{})
}

func (s *catalogService) GetAllFeatures(ctx context.Context) ([]*entity.Feature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeatureRepository().FindAll(ctx)
}

func (s *catalogService) GetFeature(ctx context.Context, slug string) (*entity.Feature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	f, err := uow.FeatureRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperror.NotFound("Feature not found")
	}
	return f, nil
}

func (s *catalogService) GetFeatureById(ctx context.Context, id string) (*entity.Feature, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.featureManager.FindOne(ctx, uow, id)
}

func (s *catalogService) GetFeatureCompleteness(ctx context.Context) ([]*entity.FeatureCompleteness, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.featureManager.Completeness(ctx, uow)
}

// ============================================================================
// Comparisons
// ============================================================================

func (s *catalogService) GetAllComparisons(ctx context.Context, featureId string) ([]*entity.Comparison, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	var specs []specification.Specification
	if featureId != "" {
		specs = append(specs, specification.ByFeatureID{FeatureID: featureId})
	}
	return uow.ComparisonRepository().FindAll(ctx, specs...)
}

// GetComparisonData pairs every published feature with the Audius and the
// competitor comparison. Draft, unknown and self comparisons are rejected,
// and a missing comparison is an error rather than a gap in the table.
func (s *catalogService) GetComparisonData(ctx context.Context, competitorSlug string) ([]*entity.FeatureComparison, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	audius, err := s.findAudius(ctx, uow)
	if err != nil {
		return nil, err
	}

	competitor, err := uow.PlatformRepository().FindOne(ctx, specification.BySlug{Slug: competitorSlug})
	if err != nil {
		return nil, err
	}
	if competitor == nil {
		return nil, &apperror.UnknownCompetitorError{Slug: competitorSlug}
	}
	if competitor.IsDraft {
		return nil, &apperror.DraftCompetitorError{Slug: competitorSlug}
	}
	if competitor.IsAudius {
		return nil, &apperror.UnknownCompetitorError{Slug: competitorSlug}
	}

	features, err := uow.FeatureRepository().FindAll(ctx, specification.Published{})
	if err != nil {
		return nil, err
	}

	audiusByFeature, err := s.comparisonsByFeature(ctx, uow, audius.Id)
	if err != nil {
		return nil, err
	}
	competitorByFeature, err := s.comparisonsByFeature(ctx, uow, competitor.Id)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.FeatureComparison, 0, len(features))
	for _, f := range features {
		a, ok := audiusByFeature[f.Id]
		if !ok {
			return nil, s.missing(audius, f)
		}
		c, ok := competitorByFeature[f.Id]
		if !ok {
			return nil, s.missing(competitor, f)
		}
		result = append(result, &entity.FeatureComparison{Feature: f, Audius: a, Competitor: c})
	}

	return result, nil
}

func (s *catalogService) comparisonsByFeature(ctx context.Context, uow unitofwork.UnitOfWork, platformId string) (map[string]*entity.Comparison, error) {
	comparisons, err := uow.ComparisonRepository().FindAll(ctx, specification.ByPlatformID{PlatformID: platformId})
	if err != nil {
		return nil, err
	}
	byFeature := make(map[string]*entity.Comparison, len(comparisons))
	for _, c := range comparisons {
		byFeature[c.FeatureId] = c
	}
	return byFeature, nil
}

func (s *catalogService) missing(platform *entity.Platform, f *entity.Feature) error {
	s.logger.Error("CATALOG", "Comparison missing for published feature", map[string]interface{}{
		"platform": platform.Slug,
		"feature":  f.Slug,
	})
	return &apperror.MissingComparisonError{Platform: platform.Name, Feature: f.Name}
}

// ============================================================================
// Dashboard
// ============================================================================

func (s *catalogService) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboardAggregator.GetStats(ctx, uow)
}
