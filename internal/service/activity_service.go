package service

import (
	"context"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/repository/specification"
	"crm-meetings-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IActivityService interface {
	GetByActor(ctx context.Context, actorId uuid.UUID) ([]*dto.ActivityResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{uowFactory: uowFactory}
}

func (s *activityService) GetByActor(ctx context.Context, actorId uuid.UUID) ([]*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.ActivityRepository().FindAll(ctx, specification.Filter("actor_id", actorId))
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ActivityResponse, 0, len(logs))
	for _, entry := range logs {
		result = append(result, &dto.ActivityResponse{
			Id:        entry.Id,
			Action:    entry.Action,
			MeetingId: entry.EntityId,
			ActorId:   entry.ActorId,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		})
	}

	return result, nil
}
