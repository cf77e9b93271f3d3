package unitofwork

import (
	"context"

	"compare-audius-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PlatformRepository() contract.PlatformRepository
	FeatureRepository() contract.FeatureRepository
	ComparisonRepository() contract.ComparisonRepository
}

// WithTransaction runs fn inside a transaction on uow. Any error from fn
// rolls every write back; nothing becomes visible until Commit succeeds.
func WithTransaction(ctx context.Context, uow UnitOfWork, fn func(uow UnitOfWork) error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := fn(uow); err != nil {
		_ = uow.Rollback()
		return err
	}
	return uow.Commit()
}
