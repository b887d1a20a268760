package entity

import "github.com/google/uuid"

type VisibilityType string

const (
	VisibilityPrivate    VisibilityType = "private"
	VisibilityDepartment VisibilityType = "department"
	VisibilityCompany    VisibilityType = "company"
)

// TrashableItem is what every trash handler hands back after a restore, and
// what a TrashRecord snapshots at delete time.
type TrashableItem interface {
	ItemId() uuid.UUID
	ItemTitle() string
	ItemType() ItemType
	OwnerId() uuid.UUID
	Department() *uuid.UUID
	Visibility() VisibilityType
}
