// FILE: internal/dto/platform_dto.go
// DTOs for Platform CRUD
package dto

import "time"

// CreatePlatformRequest adds a competitor (or the initial Audius record).
// New platforms always start as draft.
type CreatePlatformRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Slug     string `json:"slug" validate:"required,max=100,slug"`
	Logo     string `json:"logo" validate:"required"`
	IsAudius bool   `json:"isAudius"`
}

// UpdatePlatformRequest is a partial update; nil fields are left alone
type UpdatePlatformRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Slug    *string `json:"slug,omitempty" validate:"omitempty,max=100,slug"`
	Logo    *string `json:"logo,omitempty" validate:"omitempty,min=1"`
	IsDraft *bool   `json:"isDraft,omitempty"`
}

type PlatformResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Logo      string    `json:"logo"`
	IsAudius  bool      `json:"isAudius"`
	IsDraft   bool      `json:"isDraft"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
