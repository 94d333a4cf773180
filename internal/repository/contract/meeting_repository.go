package contract

import (
	"context"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *entity.Meeting) error
	// Update persists the scalar fields and replaces both attendee
	// associations with the ones on the entity.
	Update(ctx context.Context, meeting *entity.Meeting) error
	// FindOne loads a meeting with attendees, attendee leads and creator
	// expanded. Returns nil without error when no row matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error)
	// FindPage loads a page of expanded meetings ordered by date_time DESC.
	FindPage(ctx context.Context, page, limit int, specs ...specification.Specification) ([]*entity.Meeting, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SoftDelete flips deleted on a single active meeting. Returns the number
	// of rows modified (0 when the id is unknown or already deleted).
	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
	// SoftDeleteByIds flips deleted on every active meeting in ids and
	// returns the modified count. Best effort, not atomic across rows.
	SoftDeleteByIds(ctx context.Context, ids []uuid.UUID) (int64, error)
}
