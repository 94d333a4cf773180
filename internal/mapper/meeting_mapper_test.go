package mapper

import (
	"testing"
	"time"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelCarriesAssociationIdsOnly(t *testing.T) {
	m := NewMeetingMapper()
	contactId := uuid.New()
	leadId := uuid.New()

	meeting := &entity.Meeting{
		Id:     uuid.New(),
		Agenda: "Pipeline review",
		Attendees: []entity.Contact{
			{Id: contactId, FirstName: "Alice", Email: "alice@example.com"},
		},
		AttendeeLeads: []entity.Lead{
			{Id: leadId, FirstName: "Dmitri", Status: "new"},
		},
		DateTime:    "2026-09-15T10:00:00Z",
		CreatedById: uuid.New(),
	}

	result := m.ToModel(meeting)

	require.Len(t, result.Attendees, 1)
	assert.Equal(t, contactId, result.Attendees[0].Id)
	// Only the id travels; gorm resolves the join rows, the display fields
	// come back on read.
	assert.Empty(t, result.Attendees[0].FirstName)

	require.Len(t, result.AttendeeLeads, 1)
	assert.Equal(t, leadId, result.AttendeeLeads[0].Id)
	assert.Empty(t, result.AttendeeLeads[0].Status)
}

func TestToEntityExpandsCreator(t *testing.T) {
	m := NewMeetingMapper()
	creatorId := uuid.New()
	now := time.Now()

	withCreator := &model.Meeting{
		Id:          uuid.New(),
		Agenda:      "Demo",
		DateTime:    "2026-09-15T10:00:00Z",
		CreatedById: creatorId,
		CreatedBy:   model.User{Id: creatorId, FirstName: "Demo", LastName: "User"},
		CreatedAt:   now,
	}

	result := m.ToEntity(withCreator)
	require.NotNil(t, result.CreatedBy)
	assert.Equal(t, creatorId, result.CreatedBy.Id)
	assert.Equal(t, "Demo", result.CreatedBy.FirstName)

	// An unloaded creator association stays nil instead of a zero user.
	withoutCreator := &model.Meeting{
		Id:          uuid.New(),
		Agenda:      "Demo",
		DateTime:    "2026-09-15T10:00:00Z",
		CreatedById: creatorId,
		CreatedAt:   now,
	}
	assert.Nil(t, m.ToEntity(withoutCreator).CreatedBy)
}

func TestRoundTripPreservesScalars(t *testing.T) {
	m := NewMeetingMapper()
	updated := time.Now()

	original := &entity.Meeting{
		Id:          uuid.New(),
		Agenda:      "Contract renewal",
		Location:    "HQ",
		Related:     "deal-42",
		DateTime:    "2026-10-01T14:00:00Z",
		Notes:       "bring the redlines",
		CreatedById: uuid.New(),
		Deleted:     false,
		CreatedAt:   time.Now(),
		UpdatedAt:   &updated,
	}

	roundTripped := m.ToEntity(m.ToModel(original))

	assert.Equal(t, original.Id, roundTripped.Id)
	assert.Equal(t, original.Agenda, roundTripped.Agenda)
	assert.Equal(t, original.Location, roundTripped.Location)
	assert.Equal(t, original.Related, roundTripped.Related)
	assert.Equal(t, original.DateTime, roundTripped.DateTime)
	assert.Equal(t, original.Notes, roundTripped.Notes)
	assert.Equal(t, original.CreatedById, roundTripped.CreatedById)
	require.NotNil(t, roundTripped.UpdatedAt)
}
