package scope

import "gorm.io/gorm"

// WithSoftDeleted includes rows hidden by gorm.DeletedAt.
func WithSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// OnlySoftDeleted keeps only rows whose gorm.DeletedAt is set.
func OnlySoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Where("deleted_at IS NOT NULL")
}
