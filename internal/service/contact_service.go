package service

import (
	"context"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/repository/specification"
	"crm-meetings-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IContactService interface {
	GetAll(ctx context.Context) ([]*dto.ContactResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error)
}

type contactService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContactService(uowFactory unitofwork.RepositoryFactory) IContactService {
	return &contactService{uowFactory: uowFactory}
}

func (s *contactService) GetAll(ctx context.Context) ([]*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contacts, err := uow.ContactRepository().FindAll(ctx, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		result = append(result, &dto.ContactResponse{
			Id:        contact.Id,
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			Email:     contact.Email,
			Phone:     contact.Phone,
		})
	}

	return result, nil
}

func (s *contactService) Show(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	return &dto.ContactResponse{
		Id:        contact.Id,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}, nil
}
