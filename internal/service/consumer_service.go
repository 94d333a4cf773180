package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/unitofwork"
	"crm-meetings-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic, persists an audit row for every
// meeting mutation and pushes the event to the actor's live connections.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	wsHub      *websocket.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	wsHub *websocket.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		wsHub:      wsHub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.MeetingActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // malformed payloads never become valid, do not retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	activity := entity.ActivityLog{
		Id:         uuid.New(),
		Action:     payload.Action,
		EntityType: "meeting",
		EntityId:   payload.MeetingId,
		ActorId:    payload.ActorId,
		Details:    payload.Details,
		CreatedAt:  time.Now(),
	}

	if err := uow.ActivityRepository().Create(ctx, &activity); err != nil {
		log.Printf("[ERROR] Failed to persist activity %s: %v", payload.Action, err)
		msg.Nack() // retriable, the store may be back shortly
		return
	}

	if cs.wsHub != nil {
		cs.wsHub.Send(payload.ActorId, payload)
	}

	msg.Ack()
}
