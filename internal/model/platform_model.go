// FILE: internal/model/platform_model.go
// GORM model for the platforms table
package model

import "time"

type Platform struct {
	Id        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Logo      string    `gorm:"type:text;not null"`
	IsAudius  bool      `gorm:"not null;default:false"`
	IsDraft   bool      `gorm:"not null"` // set explicitly on create
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Platform) TableName() string {
	return "platforms"
}
