// FILE: internal/service/platform_service.go
// Admin CRUD for platforms
package service

import (
	"context"

	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/unitofwork"
	"compare-audius-be/pkg/admin/mapper"
	"compare-audius-be/pkg/admin/platform"
)

type IPlatformService interface {
	GetAll(ctx context.Context) ([]*dto.PlatformResponse, error)
	GetById(ctx context.Context, id string) (*dto.PlatformResponse, error)
	Create(ctx context.Context, req dto.CreatePlatformRequest) (*dto.PlatformResponse, error)
	Update(ctx context.Context, id string, req dto.UpdatePlatformRequest) (*dto.PlatformResponse, error)
	Delete(ctx context.Context, id string) error
}

type platformService struct {
	uowFactory      unitofwork.RepositoryFactory
	logger          logger.ILogger
	platformManager *platform.Manager
	revalidator     IRevalidationService
}

func NewPlatformService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	platformManager *platform.Manager,
	revalidator IRevalidationService,
) IPlatformService {
	return &platformService{
		uowFactory:      uowFactory,
		logger:          logger,
		platformManager: platformManager,
		revalidator:     revalidator,
	}
}

func (s *platformService) GetAll(ctx context.Context) ([]*dto.PlatformResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	platforms, err := uow.PlatformRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.PlatformsToResponse(platforms), nil
}

func (s *platformService) GetById(ctx context.Context, id string) (*dto.PlatformResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.platformManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return mapper.PlatformToResponse(p), nil
}

// Create stores a draft, so no public page changes
func (s *platformService) Create(ctx context.Context, req dto.CreatePlatformRequest) (*dto.PlatformResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var created *entity.Platform
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		p, err := s.platformManager.Create(ctx, tx, req)
		created = p
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("PLATFORM", "Platform created", map[string]interface{}{"id": created.Id, "slug": created.Slug})
	return mapper.PlatformToResponse(created), nil
}

func (s *platformService) Update(ctx context.Context, id string, req dto.UpdatePlatformRequest) (*dto.PlatformResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var updated *entity.Platform
	var previousSlug string
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		p, prev, err := s.platformManager.Update(ctx, tx, id, req)
		updated, previousSlug = p, prev
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("PLATFORM", "Platform updated", map[string]interface{}{"id": updated.Id, "slug": updated.Slug, "draft": updated.IsDraft})
	s.revalidator.RevalidatePublicPages(ctx, previousSlug, updated.Slug)
	return mapper.PlatformToResponse(updated), nil
}

// Delete removes the platform with its comparisons in one transaction
func (s *platformService) Delete(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var deleted *entity.Platform
	err := unitofwork.WithTransaction(ctx, uow, func(tx unitofwork.UnitOfWork) error {
		p, err := s.platformManager.Delete(ctx, tx, id)
		deleted = p
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("PLATFORM", "Platform deleted", map[string]interface{}{"id": deleted.Id, "slug": deleted.Slug})
	s.revalidator.RevalidatePublicPages(ctx, deleted.Slug)
	return nil
}
