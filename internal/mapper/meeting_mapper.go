package mapper

import (
	"time"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/model"

	"github.com/google/uuid"
)

type MeetingMapper struct {
	contactMapper *ContactMapper
	leadMapper    *LeadMapper
	userMapper    *UserMapper
}

func NewMeetingMapper() *MeetingMapper {
	return &MeetingMapper{
		contactMapper: NewContactMapper(),
		leadMapper:    NewLeadMapper(),
		userMapper:    NewUserMapper(),
	}
}

func (m *MeetingMapper) ToEntity(mt *model.Meeting) *entity.Meeting {
	if mt == nil {
		return nil
	}

	var updatedAt *time.Time
	if !mt.UpdatedAt.IsZero() {
		t := mt.UpdatedAt
		updatedAt = &t
	}

	var createdBy *entity.User
	if mt.CreatedBy.Id != uuid.Nil {
		createdBy = m.userMapper.ToEntity(&mt.CreatedBy)
	}

	attendees := make([]entity.Contact, len(mt.Attendees))
	for i := range mt.Attendees {
		attendees[i] = *m.contactMapper.ToEntity(&mt.Attendees[i])
	}

	leads := make([]entity.Lead, len(mt.AttendeeLeads))
	for i := range mt.AttendeeLeads {
		leads[i] = *m.leadMapper.ToEntity(&mt.AttendeeLeads[i])
	}

	return &entity.Meeting{
		Id:            mt.Id,
		Agenda:        mt.Agenda,
		Attendees:     attendees,
		AttendeeLeads: leads,
		Location:      mt.Location,
		Related:       mt.Related,
		DateTime:      mt.DateTime,
		Notes:         mt.Notes,
		CreatedById:   mt.CreatedById,
		CreatedBy:     createdBy,
		Deleted:       mt.Deleted,
		CreatedAt:     mt.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *MeetingMapper) ToModel(mt *entity.Meeting) *model.Meeting {
	if mt == nil {
		return nil
	}

	var updatedAt time.Time
	if mt.UpdatedAt != nil {
		updatedAt = *mt.UpdatedAt
	}

	// Associations carry ids only; gorm resolves the join rows.
	attendees := make([]model.Contact, len(mt.Attendees))
	for i, a := range mt.Attendees {
		attendees[i] = model.Contact{Id: a.Id}
	}

	leads := make([]model.Lead, len(mt.AttendeeLeads))
	for i, l := range mt.AttendeeLeads {
		leads[i] = model.Lead{Id: l.Id}
	}

	return &model.Meeting{
		Id:            mt.Id,
		Agenda:        mt.Agenda,
		Attendees:     attendees,
		AttendeeLeads: leads,
		Location:      mt.Location,
		Related:       mt.Related,
		DateTime:      mt.DateTime,
		Notes:         mt.Notes,
		CreatedById:   mt.CreatedById,
		Deleted:       mt.Deleted,
		CreatedAt:     mt.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *MeetingMapper) ToEntities(meetings []*model.Meeting) []*entity.Meeting {
	entities := make([]*entity.Meeting, len(meetings))
	for i, mt := range meetings {
		entities[i] = m.ToEntity(mt)
	}
	return entities
}
