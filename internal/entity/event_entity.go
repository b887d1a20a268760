package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Title          string
	Description    string
	StartsAt       time.Time
	EndsAt         time.Time
	AllDay         bool
	DepartmentId   *uuid.UUID
	VisibilityType VisibilityType
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

func (e *Event) ItemId() uuid.UUID          { return e.Id }
func (e *Event) ItemTitle() string          { return e.Title }
func (e *Event) ItemType() ItemType         { return ItemTypeEvent }
func (e *Event) OwnerId() uuid.UUID         { return e.UserId }
func (e *Event) Department() *uuid.UUID     { return e.DepartmentId }
func (e *Event) Visibility() VisibilityType { return e.VisibilityType }
