// FILE: internal/mapper/feature_mapper.go
// Mapper for Feature entity <-> model conversion
package mapper

import (
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(model *model.Feature) *entity.Feature {
	if model == nil {
		return nil
	}
	return &entity.Feature{
		Id:          model.Id,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
		SortOrder:   model.SortOrder,
		IsDraft:     model.IsDraft,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *FeatureMapper) ToModel(entity *entity.Feature) *model.Feature {
	if entity == nil {
		return nil
	}
	return &model.Feature{
		Id:          entity.Id,
		Name:        entity.Name,
		Slug:        entity.Slug,
		Description: entity.Description,
		SortOrder:   entity.SortOrder,
		IsDraft:     entity.IsDraft,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
