// FILE: internal/mapper/platform_mapper.go
// Mapper for Platform entity <-> model conversion
package mapper

import (
	"compare-audius-be/internal/entity"
	"compare-audius-be/internal/model"
)

type PlatformMapper struct{}

func NewPlatformMapper() *PlatformMapper {
	return &PlatformMapper{}
}

func (m *PlatformMapper) ToEntity(model *model.Platform) *entity.Platform {
	if model == nil {
		return nil
	}
	return &entity.Platform{
		Id:        model.Id,
		Name:      model.Name,
		Slug:      model.Slug,
		Logo:      model.Logo,
		IsAudius:  model.IsAudius,
		IsDraft:   model.IsDraft,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *PlatformMapper) ToModel(entity *entity.Platform) *model.Platform {
	if entity == nil {
		return nil
	}
	return &model.Platform{
		Id:        entity.Id,
		Name:      entity.Name,
		Slug:      entity.Slug,
		Logo:      entity.Logo,
		IsAudius:  entity.IsAudius,
		IsDraft:   entity.IsDraft,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *PlatformMapper) ToEntities(models []*model.Platform) []*entity.Platform {
	entities := make([]*entity.Platform, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
