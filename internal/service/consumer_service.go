package service

import (
	"context"
	"encoding/json"
	"time"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/pkg/logger"
	"wiccapedia-api/internal/repository/unitofwork"
	"wiccapedia-api/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// EventForwarder ships audit events to an external bus. *nats.Publisher
// satisfies it.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	forwarder  EventForwarder
	logger     logger.ILogger
}

// NewConsumerService persists every ENTITY_CREATED message to the audit
// table. forwarder may be nil. Delivery is at most once: a message that
// cannot be persisted is logged and dropped.
func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	forwarder EventForwarder,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		forwarder:  forwarder,
		logger:     logger,
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
	var payload dto.EntityCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal message", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		msg.Ack() // redelivery cannot fix a bad payload
		return
	}

	event := events.EntityCreated(payload.Entity, payload.Id, time.Now())
	record := &entity.EntityEvent{
		Id:         uuid.New(),
		Type:       event.EventType(),
		Entity:     payload.Entity,
		EntityId:   payload.Id,
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EntityEventRepository().Create(ctx, record); err != nil {
		cs.logger.Error("CONSUMER", "Failed to persist entity event", map[string]interface{}{
			"entity": payload.Entity,
			"id":     payload.Id,
			"error":  err.Error(),
		})
		// gochannel redelivers a Nacked message at once and without limit
		msg.Ack()
		return
	}

	if cs.forwarder != nil {
		if err := cs.forwarder.Publish(ctx, event); err != nil {
			cs.logger.Warn("CONSUMER", "Failed to forward entity event", map[string]interface{}{
				"entity": payload.Entity,
				"id":     payload.Id,
				"error":  err.Error(),
			})
		}
	}

	cs.logger.Info("CONSUMER", "Entity event recorded", map[string]interface{}{"entity": payload.Entity, "id": payload.Id})
	msg.Ack()
}
