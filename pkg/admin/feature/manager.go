package feature

import (
	"context"
	"strings"

	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/repository/specification"
	"compare-audius-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles feature admin operations
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id string) (*entity.Feature, error) {
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, apperror.NotFound("Feature not found")
	}
	return feature, nil
}

// Create appends a draft feature after the current last position
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateFeatureRequest) (*entity.Feature, error) {
	maxSortOrder, err := uow.FeatureRepository().MaxSortOrder(ctx)
	if err != nil {
		return nil, err
	}

	feature := &entity.Feature{
		Id:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Slug:        strings.TrimSpace(req.Slug),
		Description: strings.TrimSpace(req.Description),
		SortOrder:   maxSortOrder + 1,
		IsDraft:     true,
	}

	if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
		return nil, err
	}

	return feature, nil
}

// Update applies a partial update. The draft to published transition is
// rejected unless every published platform has a comparison.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id string, req dto.UpdateFeatureRequest) (*entity.Feature, error) {
	feature, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		feature.Name = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		feature.Slug = strings.TrimSpace(*req.Slug)
	}
	if req.Description != nil {
		feature.Description = strings.TrimSpace(*req.Description)
	}
	if req.SortOrder != nil {
		feature.SortOrder = *req.SortOrder
	}
	if req.IsDraft != nil {
		if feature.IsDraft && !*req.IsDraft {
			completeness, err := m.CompletenessFor(ctx, uow, feature.Id)
			if err != nil {
				return nil, err
			}
			if !completeness.Complete {
				return nil, &apperror.IncompleteComparisonsError{
					Resource: "feature",
					Id:       feature.Id,
					Count:    completeness.Count,
					Total:    completeness.Total,
				}
			}
		}
		feature.IsDraft = *req.IsDraft
	}

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	return feature, nil
}

// Delete removes a feature and its comparisons
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id string) (*entity.Feature, error) {
	feature, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if _, err := uow.ComparisonRepository().DeleteByFeature(ctx, feature.Id); err != nil {
		return nil, err
	}
	if err := uow.FeatureRepository().Delete(ctx, feature.Id); err != nil {
		return nil, err
	}

	return feature, nil
}

// Reorder writes every position; the first failure aborts the batch
func (m *Manager) Reorder(ctx context.Context, uow unitofwork.UnitOfWork, order []dto.FeatureOrderItem) error {
	for _, item := range order {
		if err := uow.FeatureRepository().UpdateSortOrder(ctx, item.Id, item.SortOrder); err != nil {
			return err
		}
	}
	return nil
}

// CompletenessFor counts one feature's comparisons on published platforms
// plus Audius, which every public table needs even before it is published
func (m *Manager) CompletenessFor(ctx context.Context, uow unitofwork.UnitOfWork, featureId string) (*entity.FeatureCompleteness, error) {
	total, err := uow.PlatformRepository().Count(ctx, specification.Compared{})
	if err != nil {
		return nil, err
	}
	count, err := uow.ComparisonRepository().Count(ctx,
		specification.ByFeatureID{FeatureID: featureId},
		specification.OnComparedPlatforms{},
	)
	if err != nil {
		return nil, err
	}
	return &entity.FeatureCompleteness{
		FeatureId: featureId,
		Count:     int(count),
		Total:     int(total),
		Complete:  count >= total,
	}, nil
}

// Completeness reports every feature, in display order
func (m *Manager) Completeness(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.FeatureCompleteness, error) {
	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	total, err := uow.PlatformRepository().Count(ctx, specification.Compared{})
	if err != nil {
		return nil, err
	}
	comparisons, err := uow.ComparisonRepository().FindAll(ctx, specification.OnComparedPlatforms{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(features))
	for _, c := range comparisons {
		counts[c.FeatureId]++
	}

	result := make([]*entity.FeatureCompleteness, 0, len(features))
	for _, f := range features {
		result = append(result, &entity.FeatureCompleteness{
			FeatureId: f.Id,
			Count:     counts[f.Id],
			Total:     int(total),
			Complete:  int64(counts[f.Id]) >= total,
		})
	}
	return result, nil
}
