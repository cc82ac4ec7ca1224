// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"payment-dashboard-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the audit topic and writes each event to the
// structured log. Observability only; nothing downstream depends on it.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, logger logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Warn("audit", "Failed to unmarshal audit event", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		msg.Ack() // malformed messages are not retriable
		return
	}

	details := map[string]interface{}{
		"occurred_at": envelope.OccurredAt,
	}
	for k, v := range envelope.Data {
		details[k] = v
	}
	cs.logger.Info("audit", envelope.Type, details)
	msg.Ack()
}
