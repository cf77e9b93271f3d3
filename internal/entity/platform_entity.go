// FILE: internal/entity/platform_entity.go
// Domain entity for compared streaming platforms
package entity

import "time"

// Platform is a streaming service shown in comparisons. Exactly one
// platform carries IsAudius and every comparison is made against it.
type Platform struct {
	Id        string
	Name      string
	Slug      string // URL key: /spotify, /soundcloud
	Logo      string // Durable URL returned by the image host
	IsAudius  bool
	IsDraft   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPublished reports whether the platform is visible on the public site.
func (p *Platform) IsPublished() bool {
	return !p.IsDraft
}
