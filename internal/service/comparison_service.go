// FILE: internal/service/comparison_service.go
// Admin reads and writes of comparison values
package service

import (
	"context"

	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/pkg/admin/comparison"
	"compare-audius-be/pkg/admin/mapper"
)

type IComparisonService interface {
	GetAll(ctx context.Context, query dto.ComparisonQuery) ([]*dto.ComparisonResponse, error)
	BulkUpsert(ctx context.Context, req dto.BulkUpsertComparisonsRequest) (*dto.BulkUpsertResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateComparisonRequest) (*dto.ComparisonResponse, error)
}

type comparisonService struct {
	uowFactory        unitofwork.RepositoryFactory
	logger            logger.ILogger
	comparisonManager *comparison.Manager
	revalidator       IRevalidationService
}

func NewComparisonService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	comparisonManager *comparison.Manager,
	revalidator IRevalidationService,
) IComparisonService {
	return &comparisonService{
		uowFactory:        uowFactory,
		logger:            logger,
		comparisonManager: comparisonManager,
		revalidator:       revalidator,
	}
}

func (s *comparisonService) GetAll(ctx context.Context, query dto.ComparisonQuery) ([]*dto.ComparisonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	comparisons, err := s.comparisonManager.FindAll(ctx, uow, query.FeatureId)
	if err != nil {
		return nil, err
	}
	return mapper.ComparisonsToResponse(comparisons), nil
}

// BulkUpsert writes the whole batch in one transaction
func (s *comparisonService) BulkUpsert(ctx context.Context, req dto.BulkUpsertComparisonsRequest) (*dto.BulkUpsertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var result *comparison.UpsertResult
	var touched []string
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		r, err := s.comparisonManager.BulkUpsert(ctx, tx, req.Items)
		if err != nil {
			return err
		}
		result = r
		touched, err = s.platformSlugs(ctx, tx, r.PlatformIds)
		return err
	})
	if err != nil {
		s.logger.Warn("COMPARISON", "Bulk upsert rolled back", map[string]interface{}{"items": len(req.Items), "error": err.Error()})
		return nil, err
	}

	s.logger.Info("COMPARISON", "Comparisons upserted", map[string]interface{}{"created": result.Created, "updated": result.Updated})
	s.revalidator.RevalidatePublicPages(ctx, touched...)
	return &dto.BulkUpsertResponse{Success: true, Created: result.Created, Updated: result.Updated}, nil
}

func (s *comparisonService) Update(ctx context.Context, id string, req dto.UpdateComparisonRequest) (*dto.ComparisonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var updated *entity.Comparison
	var touched []string
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		c, err := s.comparisonManager.Update(ctx, tx, id, req)
		if err != nil {
			return err
		}
		updated = c
		touched, err = s.platformSlugs(ctx, tx, []string{c.PlatformId})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("COMPARISON", "Comparison updated", map[string]interface{}{"id": updated.Id, "status": updated.Status})
	s.revalidator.RevalidatePublicPages(ctx, touched...)
	return mapper.ComparisonToResponse(updated), nil
}

func (s *comparisonService) platformSlugs(ctx context.Context, uow unitofwork.UnitOfWork, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	platforms, err := uow.PlatformRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(platforms))
	for _, p := range platforms {
		slugs = append(slugs, p.Slug)
	}
	return slugs, nil
}
