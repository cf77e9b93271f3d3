// FILE: internal/repository/implementation/platform_repository_impl.go
// Implementation of PlatformRepository
package implementation

import (
	"context"
	"errors"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/mapper"
	"compare-audius-be/internal/model"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/repository/contract"
	"compare-audius-be/internal/repository/scope"
	"compare-audius-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PlatformRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlatformMapper
}

func NewPlatformRepository(db *gorm.DB) contract.PlatformRepository {
	return &PlatformRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlatformMapper(),
	}
}

func (r *PlatformRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlatformRepositoryImpl) Create(ctx context.Context, platform *entity.Platform) error {
	m := r.mapper.ToModel(platform)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return &apperror.DuplicateSlugError{Resource: "platform", Slug: platform.Slug}
		}
		return err
	}
	*platform = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlatformRepositoryImpl) Update(ctx context.Context, platform *entity.Platform) error {
	m := r.mapper.ToModel(platform)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return &apperror.DuplicateSlugError{Resource: "platform", Slug: platform.Slug}
		}
		return err
	}
	*platform = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlatformRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Platform{}, "id = ?", id).Error
}

func (r *PlatformRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Platform, error) {
	var m model.Platform
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PlatformRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Platform, error) {
	var models []*model.Platform
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByName), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PlatformRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Platform{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
