package implementation

import (
	"context"
	"errors"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/mapper"
	"crm-meetings-be/internal/model"
	"crm-meetings-be/internal/repository/contract"
	"crm-meetings-be/internal/repository/scope"
	"crm-meetings-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MeetingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeetingMapper
}

func NewMeetingRepository(db *gorm.DB) contract.MeetingRepository {
	return &MeetingRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeetingMapper(),
	}
}

func (r *MeetingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// withExpansion preloads the display relations every read carries.
func (r *MeetingRepositoryImpl) withExpansion(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Attendees").
		Preload("AttendeeLeads").
		Preload("CreatedBy")
}

func (r *MeetingRepositoryImpl) Create(ctx context.Context, meeting *entity.Meeting) error {
	m := r.mapper.ToModel(meeting)
	// Omit association columns so linked contacts/leads are joined, never
	// upserted, from the id-only stubs the mapper builds.
	err := r.db.WithContext(ctx).
		Omit("Attendees.*", "AttendeeLeads.*").
		Create(m).Error
	if err != nil {
		return err
	}
	*meeting = *r.mapper.ToEntity(m)
	return nil
}

func (r *MeetingRepositoryImpl) Update(ctx context.Context, meeting *entity.Meeting) error {
	m := r.mapper.ToModel(meeting)
	tx := r.db.WithContext(ctx)

	if err := tx.Omit(clause.Associations).Save(m).Error; err != nil {
		return err
	}

	// Full replacement semantics for both attendee lists.
	if err := r.replaceAssociation(tx, m, "Attendees", len(m.Attendees) > 0, m.Attendees); err != nil {
		return err
	}
	if err := r.replaceAssociation(tx, m, "AttendeeLeads", len(m.AttendeeLeads) > 0, m.AttendeeLeads); err != nil {
		return err
	}

	*meeting = *r.mapper.ToEntity(m)
	return nil
}

// replaceAssociation swaps the join rows for one attendee list. Replace with
// an empty slice is a no-op in gorm, so an empty list clears instead.
func (r *MeetingRepositoryImpl) replaceAssociation(tx *gorm.DB, m *model.Meeting, name string, hasValues bool, values interface{}) error {
	assoc := tx.Model(m).Association(name)
	if !hasValues {
		return assoc.Clear()
	}
	return assoc.Replace(values)
}

func (r *MeetingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error) {
	var m model.Meeting
	query := r.applySpecifications(r.withExpansion(r.db.WithContext(ctx)), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MeetingRepositoryImpl) FindPage(ctx context.Context, page, limit int, specs ...specification.Specification) ([]*entity.Meeting, error) {
	var models []*model.Meeting
	query := r.applySpecifications(r.withExpansion(r.db.WithContext(ctx)), specs...)
	query = query.Scopes(scope.OrderByDateTimeDesc, scope.Paginate(page, limit))
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MeetingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Meeting{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MeetingRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	// NotDeleted keeps the flip idempotent: zero modified means the id is
	// unknown or the meeting was already deleted.
	query := r.applySpecifications(
		r.db.WithContext(ctx).Model(&model.Meeting{}),
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	res := query.Update("deleted", true)
	return res.RowsAffected, res.Error
}

func (r *MeetingRepositoryImpl) SoftDeleteByIds(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := r.applySpecifications(
		r.db.WithContext(ctx).Model(&model.Meeting{}),
		specification.ByIDs{IDs: ids},
		specification.NotDeleted{},
	)
	res := query.Update("deleted", true)
	return res.RowsAffected, res.Error
}
