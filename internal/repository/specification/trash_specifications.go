package specification

import (
	"time"

	"officehub-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByItemType struct {
	ItemType entity.ItemType
}

func (s ByItemType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("item_type = ?", string(s.ItemType))
}

// DeletedOnOrBefore selects records trashed at or before Cutoff.
type DeletedOnOrBefore struct {
	Cutoff time.Time
}

func (s DeletedOnOrBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at <= ?", s.Cutoff)
}

type SharedOnly struct{}

func (s SharedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_shared = ?", true)
}

type ByOwnerDepartment struct {
	DepartmentID uuid.UUID
}

func (s ByOwnerDepartment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_department_id = ?", s.DepartmentID)
}
