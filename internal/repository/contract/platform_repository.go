// FILE: internal/repository/contract/platform_repository.go
// Repository interface for Platform
package contract

import (
	"context"

	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/repository/specification"
)

type PlatformRepository interface {
	Create(ctx context.Context, platform *entity.Platform) error
	Update(ctx context.Context, platform *entity.Platform) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Platform, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Platform, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
