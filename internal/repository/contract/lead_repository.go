package contract

import (
	"context"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/specification"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
}
