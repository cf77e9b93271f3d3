// FILE: internal/repository/contract/feature_repository.go
// Repository interface for Feature
package contract

import (
	"context"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/repository/specification"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateSortOrder(ctx context.Context, id string, sortOrder int) error
	MaxSortOrder(ctx context.Context) (int, error)
}
