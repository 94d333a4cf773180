package mapper

import (
	"time"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Lead{
		Id:        l.Id,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		Phone:     l.Phone,
		Status:    l.Status,
		Deleted:   l.Deleted,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.Lead{
		Id:        l.Id,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		Phone:     l.Phone,
		Status:    l.Status,
		Deleted:   l.Deleted,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LeadMapper) ToEntities(leads []*model.Lead) []*entity.Lead {
	entities := make([]*entity.Lead, len(leads))
	for i, l := range leads {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
