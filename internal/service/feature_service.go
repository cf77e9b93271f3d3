// FILE: internal/service/feature_service.go
// Admin CRUD, ordering and publish checks for features
package service

import (
	"context"

	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/pkg/admin/feature"
	"compare-audius-be/pkg/admin/mapper"
)

type IFeatureService interface {
	GetAll(ctx context.Context) ([]*dto.FeatureResponse, error)
	GetById(ctx context.Context, id string) (*dto.FeatureResponse, error)
	GetCompleteness(ctx context.Context) ([]*dto.FeatureCompletenessResponse, error)
	Create(ctx context.Context, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, req dto.ReorderFeaturesRequest) error
}

type featureService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	featureManager *feature.Manager
	revalidator    IRevalidationService
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	featureManager *feature.Manager,
	revalidator IRevalidationService,
) IFeatureService {
	return &featureService{
		uowFactory:     uowFactory,
		logger:         logger,
		featureManager: featureManager,
		revalidator:    revalidator,
	}
}

func (s *featureService) GetAll(ctx context.Context) ([]*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.FeaturesToResponse(features), nil
}

func (s *featureService) GetById(ctx context.Context, id string) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	f, err := s.featureManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return mapper.FeatureToResponse(f), nil
}

func (s *featureService) GetCompleteness(ctx context.Context) ([]*dto.FeatureCompletenessResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := s.featureManager.Completeness(ctx, uow)
	if err != nil {
		return nil, err
	}
	return mapper.CompletenessToResponse(items), nil
}

func (s *featureService) Create(ctx context.Context, req dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var created *entity.Feature
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		f, err := s.featureManager.Create(ctx, tx, req)
		created = f
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("FEATURE", "Feature created", map[string]interface{}{"id": created.Id, "slug": created.Slug, "sortOrder": created.SortOrder})
	return mapper.FeatureToResponse(created), nil
}

// Update recomputes completeness inside the transaction before a
// draft feature is published
func (s *featureService) Update(ctx context.Context, id string, req dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var updated *entity.Feature
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		f, err := s.featureManager.Update(ctx, tx, id, req)
		updated = f
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("FEATURE", "Feature updated", map[string]interface{}{"id": updated.Id, "draft": updated.IsDraft})
	s.revalidator.RevalidatePublicPages(ctx)
	return mapper.FeatureToResponse(updated), nil
}

func (s *featureService) Delete(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var deleted *entity.Feature
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		f, err := s.featureManager.Delete(ctx, tx, id)
		deleted = f
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("FEATURE", "Feature deleted", map[string]interface{}{"id": deleted.Id, "slug": deleted.Slug})
	s.revalidator.RevalidatePublicPages(ctx)
	return nil
}

// Reorder applies every position or none
func (s *featureService) Reorder(ctx context.Context, req dto.ReorderFeaturesRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		return s.featureManager.Reorder(ctx, tx, req.Order)
	})
	if err != nil {
		s.logger.Warn("FEATURE", "Reorder rolled back", map[string]interface{}{"items": len(req.Order), "error": err.Error()})
		return err
	}

	s.logger.Info("FEATURE", "Features reordered", map[string]interface{}{"items": len(req.Order)})
	s.revalidator.RevalidatePublicPages(ctx)
	return nil
}
