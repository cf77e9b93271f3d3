// FILE: internal/model/feature_model.go
// GORM model for the features table
package model

import "time"

type Feature struct {
	Id          string    `gorm:"type:varchar(64);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text;not null"`
	SortOrder   int       `gorm:"not null;index"`
	IsDraft     bool      `gorm:"not null"` // set explicitly on create
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Feature) TableName() string {
	return "features"
}
