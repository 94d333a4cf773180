package dto

import (
	"time"

	"github.com/google/uuid"
)

// MeetingActivityMessage is the payload published for every meeting mutation
// and consumed by the activity trail worker.
type MeetingActivityMessage struct {
	Action    string                 `json:"action"`
	MeetingId *uuid.UUID             `json:"meeting_id,omitempty"`
	ActorId   uuid.UUID              `json:"actor_id"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type ActivityResponse struct {
	Id        uuid.UUID              `json:"id"`
	Action    string                 `json:"action"`
	MeetingId *uuid.UUID             `json:"meetingId,omitempty"`
	ActorId   uuid.UUID              `json:"actorId"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
