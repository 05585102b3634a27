package service

import (
	"context"
	"encoding/json"
	"strconv"

	"wiccapedia-api/internal/dto"
	"wiccapedia-api/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	// EntityCreated announces a committed insert. Failures are logged and
	// swallowed; the row is already persisted.
	EntityCreated(ctx context.Context, entity string, id string)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	logger    logger.ILogger
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, logger logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		logger:    logger,
	}
}

func (ps *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return ps.pubSub.Publish(ps.topicName, msg)
}

func (ps *publisherService) EntityCreated(ctx context.Context, entity string, id string) {
	payload, err := json.Marshal(dto.EntityCreatedMessage{Entity: entity, Id: id})
	if err != nil {
		ps.logger.Error("PUBLISHER", "Failed to encode event", map[string]interface{}{"entity": entity, "error": err.Error()})
		return
	}
	if err := ps.Publish(ctx, payload); err != nil {
		ps.logger.Error("PUBLISHER", "Failed to publish event", map[string]interface{}{"entity": entity, "id": id, "error": err.Error()})
	}
}

func int64ID(id int64) string {
	return strconv.FormatInt(id, 10)
}
