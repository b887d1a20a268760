package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note uses an explicit is_deleted flag instead of gorm.DeletedAt so trashed
// notes stay visible to unscoped trash queries.
type Note struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Content        string     `gorm:"type:text"`
	DepartmentId   *uuid.UUID `gorm:"type:uuid;index"`
	VisibilityType string     `gorm:"type:varchar(20);not null;default:'private'"`
	IsDeleted      bool       `gorm:"not null;default:false;index"`
	DeletedAt      *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.Id == uuid.Nil {
		n.Id = uuid.New()
	}
	return nil
}
