package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateMeetingRequest carries the original wire field names (attendes,
// attendesLead, related) for client compatibility.
type CreateMeetingRequest struct {
	Agenda       string   `json:"agenda" validate:"required"`
	Attendes     []string `json:"attendes"`
	AttendesLead []string `json:"attendesLead"`
	Location     string   `json:"location"`
	Related      string   `json:"related"`
	DateTime     string   `json:"dateTime" validate:"required"`
	Notes        string   `json:"notes"`
}

// UpdateMeetingRequest deliberately carries no required tags: update replaces
// whatever is sent, matching the historical API contract.
type UpdateMeetingRequest struct {
	Id           uuid.UUID
	Agenda       string   `json:"agenda"`
	Attendes     []string `json:"attendes"`
	AttendesLead []string `json:"attendesLead"`
	Location     string   `json:"location"`
	Related      string   `json:"related"`
	DateTime     string   `json:"dateTime"`
	Notes        string   `json:"notes"`
}

type AttendeeResponse struct {
	Id        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

type CreatedByResponse struct {
	Id        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type MeetingResponse struct {
	Id           uuid.UUID          `json:"id"`
	Agenda       string             `json:"agenda"`
	Attendes     []AttendeeResponse `json:"attendes"`
	AttendesLead []AttendeeResponse `json:"attendesLead"`
	Location     string             `json:"location"`
	Related      string             `json:"related"`
	DateTime     string             `json:"dateTime"`
	Notes        string             `json:"notes"`
	CreatedBy    *CreatedByResponse `json:"createBy"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    *time.Time         `json:"updatedAt"`
}

type ListMeetingsQuery struct {
	Page      int
	Limit     int
	CreatedBy string
	Related   string
	Agenda    string
}

type PaginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

type ListMeetingsResponse struct {
	Meetings   []*MeetingResponse `json:"meetings"`
	Pagination PaginationResponse `json:"pagination"`
}

type DeleteManyMeetingsRequest struct {
	Ids []string `json:"ids" validate:"required,min=1"`
}

type DeleteManyMeetingsResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
