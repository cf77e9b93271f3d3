// FILE: internal/mapper/comparison_mapper.go
// Mapper for Comparison entity <-> model conversion
package mapper

import (
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/model"
)

type ComparisonMapper struct{}

func NewComparisonMapper() *ComparisonMapper {
	return &ComparisonMapper{}
}

func (m *ComparisonMapper) ToEntity(model *model.Comparison) *entity.Comparison {
	if model == nil {
		return nil
	}
	return &entity.Comparison{
		Id:           model.Id,
		PlatformId:   model.PlatformId,
		FeatureId:    model.FeatureId,
		Status:       entity.ComparisonStatus(model.Status),
		DisplayValue: model.DisplayValue,
		Context:      model.Context,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *ComparisonMapper) ToModel(entity *entity.Comparison) *model.Comparison {
	if entity == nil {
		return nil
	}
	return &model.Comparison{
		Id:           entity.Id,
		PlatformId:   entity.PlatformId,
		FeatureId:    entity.FeatureId,
		Status:       string(entity.Status),
		DisplayValue: entity.DisplayValue,
		Context:      entity.Context,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *ComparisonMapper) ToEntities(models []*model.Comparison) []*entity.Comparison {
	entities := make([]*entity.Comparison, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
