// FILE: internal/model/comparison_model.go
// GORM model for the comparisons table
package model

import "time"

// Comparison rows cascade with their platform and feature; the composite
// unique index keeps one row per platform x feature.
type Comparison struct {
	Id           string    `gorm:"type:varchar(64);primaryKey"`
	PlatformId   string    `gorm:"type:varchar(64);not null;uniqueIndex:platform_feature_unique"`
	FeatureId    string    `gorm:"type:varchar(64);not null;uniqueIndex:platform_feature_unique;index"`
	Status       string    `gorm:"type:varchar(16);not null"`
	DisplayValue *string   `gorm:"type:text"`
	Context      *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Platform *Platform `gorm:"foreignKey:PlatformId;constraint:OnDelete:CASCADE"`
	Feature  *Feature  `gorm:"foreignKey:FeatureId;constraint:OnDelete:CASCADE"`
}

func (Comparison) TableName() string {
	return "comparisons"
}
