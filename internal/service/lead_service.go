package service

import (
	"context"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/specification"
	"crm-meetings-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ILeadService interface {
	GetAll(ctx context.Context) ([]*dto.LeadResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.LeadResponse, error)
}

type leadService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLeadService(uowFactory unitofwork.RepositoryFactory) ILeadService {
	return &leadService{uowFactory: uowFactory}
}

func toLeadResponse(lead *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		Id:        lead.Id,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Status:    lead.Status,
	}
}

func (s *leadService) GetAll(ctx context.Context) ([]*dto.LeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	leads, err := uow.LeadRepository().FindAll(ctx, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		result = append(result, toLeadResponse(lead))
	}

	return result, nil
}

func (s *leadService) Show(ctx context.Context, id uuid.UUID) (*dto.LeadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	lead, err := uow.LeadRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	return toLeadResponse(lead), nil
}
