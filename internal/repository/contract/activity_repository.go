package contract

import (
	"context"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/specification"
)

type ActivityRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error)
}
