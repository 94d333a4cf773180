package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreatedBy struct {
	UserID uuid.UUID
}

func (s CreatedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_by_id = ?", s.UserID)
}

type ByRelated struct {
	Related string
}

func (s ByRelated) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("related = ?", s.Related)
}

type AgendaContains struct {
	Query string
}

func (s AgendaContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agenda ILIKE ?", "%"+s.Query+"%")
}
