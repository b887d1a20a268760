package scope

import "gorm.io/gorm"

func OrderByDeletedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("deleted_at DESC")
}

func OrderByExecutedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("executed_at DESC")
}
