package entity

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
