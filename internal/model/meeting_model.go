package model

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Agenda        string    `gorm:"type:text;not null"`
	Attendees     []Contact `gorm:"many2many:meeting_attendees"`
	AttendeeLeads []Lead    `gorm:"many2many:meeting_attendee_leads"`
	Location      string    `gorm:"type:text"`
	Related       string    `gorm:"type:text"`
	// Kept as text for wire parity with the original API; ISO-8601 strings
	// order correctly under date_time DESC.
	DateTime    string    `gorm:"type:varchar(64);not null;index"`
	Notes       string    `gorm:"type:text"`
	CreatedById uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedBy   User      `gorm:"foreignKey:CreatedById"`
	Deleted     bool      `gorm:"not null;default:false;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Meeting) TableName() string {
	return "meetings"
}
