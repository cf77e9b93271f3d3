package specification

import "gorm.io/gorm"

// Platform Specs

type AudiusPlatform struct{}

func (s AudiusPlatform) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_audius = ?", true)
}

type NotAudius struct{}

func (s NotAudius) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_audius = ?", false)
}

// Compared matches every platform a published feature must cover: the live
// competitors and Audius, draft or not
type Compared struct{}

func (s Compared) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(is_draft = ? OR is_audius = ?)", false, true)
}

// Comparison Specs

type ByPlatformID struct {
	PlatformID string
}

func (s ByPlatformID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("platform_id = ?", s.PlatformID)
}

type ByFeatureID struct {
	FeatureID string
}

func (s ByFeatureID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id = ?", s.FeatureID)
}

type ByPlatformAndFeature struct {
	PlatformID string
	FeatureID  string
}

func (s ByPlatformAndFeature) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("platform_id = ? AND feature_id = ?", s.PlatformID, s.FeatureID)
}

// OnComparedPlatforms restricts comparisons to rows whose platform is Compared
type OnComparedPlatforms struct{}

func (s OnComparedPlatforms) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("platform_id IN (?)", Compared{}.Apply(db.Session(&gorm.Session{NewDB: true}).
		Table("platforms").Select("id")))
}

// OnPublishedFeatures restricts comparisons to rows whose feature is live
type OnPublishedFeatures struct{}

func (s OnPublishedFeatures) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id IN (?)", db.Session(&gorm.Session{NewDB: true}).
		Table("features").Select("id").Where("is_draft = ?", false))
}
