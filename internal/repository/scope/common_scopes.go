package scope

import "gorm.io/gorm"

func OrderBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("created_at ASC")
}

func OrderByName(db *gorm.DB) *gorm.DB {
	return db.Order("is_audius DESC").Order("name ASC")
}
