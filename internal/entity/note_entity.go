package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Title          string
	Content        string
	DepartmentId   *uuid.UUID
	VisibilityType VisibilityType
	IsDeleted      bool
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (n *Note) ItemId() uuid.UUID          { return n.Id }
func (n *Note) ItemTitle() string          { return n.Title }
func (n *Note) ItemType() ItemType         { return ItemTypeNote }
func (n *Note) OwnerId() uuid.UUID         { return n.UserId }
func (n *Note) Department() *uuid.UUID     { return n.DepartmentId }
func (n *Note) Visibility() VisibilityType { return n.VisibilityType }
