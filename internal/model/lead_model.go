package model

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255);index"`
	Phone     string    `gorm:"type:varchar(50)"`
	Status    string    `gorm:"type:varchar(50);not null;default:'new'"`
	Deleted   bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
