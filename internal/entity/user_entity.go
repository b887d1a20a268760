package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	Status       UserStatus
	DepartmentId *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
