// FILE: internal/entity/feature_entity.go
// Domain entity for compared features
package entity

import "time"

// Feature is a capability evaluated across every platform
type Feature struct {
	Id          string
	Name        string // Display name: "Streaming Quality"
	Slug        string // Unique key: streaming-quality
	Description string
	SortOrder   int // Ascending display order
	IsDraft     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (f *Feature) IsPublished() bool {
	return !f.IsDraft
}

// FeatureCompleteness counts the comparisons a feature has against the
// published platforms. A feature may only be published when Complete.
type FeatureCompleteness struct {
	FeatureId string
	Count     int
	Total     int
	Complete  bool
}
