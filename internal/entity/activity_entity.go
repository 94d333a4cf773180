package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id         uuid.UUID
	Action     string
	EntityType string
	EntityId   *uuid.UUID
	ActorId    uuid.UUID
	Details    map[string]interface{}
	CreatedAt  time.Time
}
