// FILE: internal/repository/implementation/comparison_repository_impl.go
// Implementation of ComparisonRepository
package implementation

import (
	"context"
	"errors"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/mapper"
	"compare-audius-be/internal/model"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/repository/contract"
	"compare-audius-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ComparisonRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComparisonMapper
}

func NewComparisonRepository(db *gorm.DB) contract.ComparisonRepository {
	return &ComparisonRepositoryImpl{
		db:     db,
		mapper: mapper.NewComparisonMapper(),
	}
}

func (r *ComparisonRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComparisonRepositoryImpl) translate(err error, c *entity.Comparison) error {
	switch {
	case isUniqueViolation(err):
		return &apperror.DuplicateComparisonError{PlatformId: c.PlatformId, FeatureId: c.FeatureId}
	case isForeignKeyViolation(err):
		return apperror.Wrap(apperror.KindNotFound, err, "Platform or feature not found")
	}
	return err
}

// Create inserts a new row. A second row for the same platform x feature
// fails with DuplicateComparisonError.
func (r *ComparisonRepositoryImpl) Create(ctx context.Context, comparison *entity.Comparison) error {
	m := r.mapper.ToModel(comparison)
	if err := r.db.WithContext(ctx).Omit("Platform", "Feature").Create(m).Error; err != nil {
		return r.translate(err, comparison)
	}
	*comparison = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComparisonRepositoryImpl) Update(ctx context.Context, comparison *entity.Comparison) error {
	m := r.mapper.ToModel(comparison)
	if err := r.db.WithContext(ctx).Omit("Platform", "Feature").Save(m).Error; err != nil {
		return r.translate(err, comparison)
	}
	*comparison = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComparisonRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Comparison{}, "id = ?", id).Error
}

func (r *ComparisonRepositoryImpl) DeleteByPlatform(ctx context.Context, platformId string) (int64, error) {
	res := r.db.WithContext(ctx).Where("platform_id = ?", platformId).Delete(&model.Comparison{})
	return res.RowsAffected, res.Error
}

func (r *ComparisonRepositoryImpl) DeleteByFeature(ctx context.Context, featureId string) (int64, error) {
	res := r.db.WithContext(ctx).Where("feature_id = ?", featureId).Delete(&model.Comparison{})
	return res.RowsAffected, res.Error
}

func (r *ComparisonRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comparison, error) {
	var m model.Comparison
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComparisonRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comparison, error) {
	var models []*model.Comparison
	query := r.applySpecifications(r.db.WithContext(ctx).Order("created_at ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ComparisonRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Comparison{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
