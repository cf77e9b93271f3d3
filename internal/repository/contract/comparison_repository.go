// FILE: internal/repository/contract/comparison_repository.go
// Repository interface for Comparison
package contract

import (
	"context"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/repository/specification"
)

type ComparisonRepository interface {
	Create(ctx context.Context, comparison *entity.Comparison) error
	Update(ctx context.Context, comparison *entity.Comparison) error
	Delete(ctx context.Context, id string) error
	DeleteByPlatform(ctx context.Context, platformId string) (int64, error)
	DeleteByFeature(ctx context.Context, featureId string) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comparison, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comparison, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
