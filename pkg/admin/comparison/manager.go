package comparison

import (
	"context"

	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles comparison writes
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// UpsertResult counts what a bulk upsert did and which rows it touched
type UpsertResult struct {
	Created     int
	Updated     int
	PlatformIds []string
}

// BulkUpsert updates the comparison for each (platform, feature) pair or
// inserts it when missing. Re-running the same items leaves the same state.
// Run it inside a transaction: the first failing item aborts the batch.
func (m *Manager) BulkUpsert(ctx context.Context, uow unitofwork.UnitOfWork, items []dto.ComparisonItem) (*UpsertResult, error) {
	result := &UpsertResult{}
	seenPlatforms := make(map[string]bool)
	knownFeatures := make(map[string]bool)

	for _, item := range items {
		status := entity.ComparisonStatus(item.Status)
		if !status.IsValid() {
			return nil, apperror.Validation("Invalid status: %s", item.Status)
		}

		if !seenPlatforms[item.PlatformId] {
			if err := m.requirePlatform(ctx, uow, item.PlatformId); err != nil {
				return nil, err
			}
			seenPlatforms[item.PlatformId] = true
			result.PlatformIds = append(result.PlatformIds, item.PlatformId)
		}
		if !knownFeatures[item.FeatureId] {
			if err := m.requireFeature(ctx, uow, item.FeatureId); err != nil {
				return nil, err
			}
			knownFeatures[item.FeatureId] = true
		}

		existing, err := uow.ComparisonRepository().FindOne(ctx, specification.ByPlatformAndFeature{
			PlatformID: item.PlatformId,
			FeatureID:  item.FeatureId,
		})
		if err != nil {
			return nil, err
		}

		if existing != nil {
			existing.Status = status
			existing.DisplayValue = item.DisplayValue
			existing.Context = item.Context
			existing.Normalize()
			if err := uow.ComparisonRepository().Update(ctx, existing); err != nil {
				return nil, err
			}
			result.Updated++
			continue
		}

		comparison := &entity.Comparison{
			Id:           uuid.NewString(),
			PlatformId:   item.PlatformId,
			FeatureId:    item.FeatureId,
			Status:       status,
			DisplayValue: item.DisplayValue,
			Context:      item.Context,
		}
		comparison.Normalize()
		if err := uow.ComparisonRepository().Create(ctx, comparison); err != nil {
			return nil, err
		}
		result.Created++
	}

	return result, nil
}

// Update edits one comparison in place with the same normalization as
// BulkUpsert.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id string, req dto.UpdateComparisonRequest) (*entity.Comparison, error) {
	comparison, err := uow.ComparisonRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if comparison == nil {
		return nil, apperror.NotFound("Comparison not found")
	}

	if req.Status != nil {
		status := entity.ComparisonStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperror.Validation("Invalid status: %s", *req.Status)
		}
		comparison.Status = status
	}
	if req.DisplayValue != nil {
		comparison.DisplayValue = req.DisplayValue
	}
	if req.Context != nil {
		comparison.Context = req.Context
	}
	comparison.Normalize()

	if err := uow.ComparisonRepository().Update(ctx, comparison); err != nil {
		return nil, err
	}

	return comparison, nil
}

// FindAll lists comparisons, optionally for a single feature
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, featureId string) ([]*entity.Comparison, error) {
	var specs []specification.Specification
	if featureId != "" {
		specs = append(specs, specification.ByFeatureID{FeatureID: featureId})
	}
	return uow.ComparisonRepository().FindAll(ctx, specs...)
}

func (m *Manager) requirePlatform(ctx context.Context, uow unitofwork.UnitOfWork, id string) error {
	count, err := uow.PlatformRepository().Count(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if count == 0 {
		return apperror.NotFound("Platform not found: %s", id)
	}
	return nil
}

func (m *Manager) requireFeature(ctx context.Context, uow unitofwork.UnitOfWork, id string) error {
	count, err := uow.FeatureRepository().Count(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if count == 0 {
		return apperror.NotFound("Feature not found: %s", id)
	}
	return nil
}
