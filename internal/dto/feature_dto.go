// FILE: internal/dto/feature_dto.go
// DTOs for Feature CRUD and ordering
package dto

import "time"

// CreateFeatureRequest adds a feature at the end of the list, as draft
type CreateFeatureRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,max=100,slug"`
	Description string `json:"description" validate:"required"`
}

type UpdateFeatureRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,max=100,slug"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
	SortOrder   *int    `json:"sortOrder,omitempty"`
	IsDraft     *bool   `json:"isDraft,omitempty"`
}

type FeatureOrderItem struct {
	Id        string `json:"id" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

// ReorderFeaturesRequest is applied as one batch: all positions or none
type ReorderFeaturesRequest struct {
	Order []FeatureOrderItem `json:"order" validate:"required,dive"`
}

type FeatureResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder"`
	IsDraft     bool      `json:"isDraft"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type FeatureCompletenessResponse struct {
	FeatureId string `json:"featureId"`
	Count     int    `json:"count"`
	Total     int    `json:"total"`
	Complete  bool   `json:"complete"`
}
