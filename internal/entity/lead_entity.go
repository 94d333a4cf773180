package entity

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Status    string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
