package entity

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id            uuid.UUID
	Agenda        string
	Attendees     []Contact
	AttendeeLeads []Lead
	Location      string
	Related       string
	DateTime      string
	Notes         string
	CreatedById   uuid.UUID
	CreatedBy     *User
	Deleted       bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// AttendeeIds returns the contact ids currently linked to the meeting.
func (m *Meeting) AttendeeIds() []uuid.UUID {
	ids := make([]uuid.UUID, len(m.Attendees))
	for i, a := range m.Attendees {
		ids[i] = a.Id
	}
	return ids
}

// AttendeeLeadIds returns the lead ids currently linked to the meeting.
func (m *Meeting) AttendeeLeadIds() []uuid.UUID {
	ids := make([]uuid.UUID, len(m.AttendeeLeads))
	for i, l := range m.AttendeeLeads {
		ids[i] = l.Id
	}
	return ids
}
