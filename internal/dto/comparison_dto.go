// FILE: internal/dto/comparison_dto.go
// DTOs for Comparison upserts and reads
package dto

import "time"

type ComparisonItem struct {
	PlatformId   string  `json:"platformId" validate:"required"`
	FeatureId    string  `json:"featureId" validate:"required"`
	Status       string  `json:"status" validate:"required,oneof=yes no partial custom"`
	DisplayValue *string `json:"displayValue,omitempty"`
	Context      *string `json:"context,omitempty"`
}

// BulkUpsertComparisonsRequest is applied in one transaction
type BulkUpsertComparisonsRequest struct {
	Items []ComparisonItem `json:"items" validate:"required,dive"`
}

type UpdateComparisonRequest struct {
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=yes no partial custom"`
	DisplayValue *string `json:"displayValue,omitempty"`
	Context      *string `json:"context,omitempty"`
}

type ComparisonQuery struct {
	FeatureId string `query:"featureId"`
}

type ComparisonResponse struct {
	Id           string    `json:"id"`
	PlatformId   string    `json:"platformId"`
	FeatureId    string    `json:"featureId"`
	Status       string    `json:"status"`
	DisplayValue *string   `json:"displayValue"`
	Context      *string   `json:"context"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BulkUpsertResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
	Updated int  `json:"updated"`
}
