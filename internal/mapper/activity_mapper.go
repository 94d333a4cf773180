package mapper

import (
	"encoding/json"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}

	var details map[string]interface{}
	if len(a.Details) > 0 {
		// Details are written by us; a decode failure just yields nil details.
		_ = json.Unmarshal(a.Details, &details)
	}

	return &entity.ActivityLog{
		Id:         a.Id,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		ActorId:    a.ActorId,
		Details:    details,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.ActivityLog) *model.ActivityLog {
	if a == nil {
		return nil
	}

	var details datatypes.JSON
	if a.Details != nil {
		raw, _ := json.Marshal(a.Details)
		details = datatypes.JSON(raw)
	}

	return &model.ActivityLog{
		Id:         a.Id,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		ActorId:    a.ActorId,
		Details:    details,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
