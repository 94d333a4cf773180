package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLog is the audit trail row written by the activity consumer for
// every meeting mutation.
type ActivityLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action     string         `gorm:"type:varchar(50);not null;index"`
	EntityType string         `gorm:"type:varchar(50);not null;index"`
	EntityId   *uuid.UUID     `gorm:"type:uuid;index"`
	ActorId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"default:now();not null;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
