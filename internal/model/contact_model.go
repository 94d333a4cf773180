package model

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255);index"`
	Phone     string    `gorm:"type:varchar(50)"`
	Deleted   bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Contact) TableName() string {
	return "contacts"
}
