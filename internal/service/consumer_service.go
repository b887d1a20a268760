package service

import (
	"context"

	"officehub-be/internal/pkg/logger"
	"officehub-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const auditModule = "TRASH_AUDIT"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process trash topic into the audit log.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	audit      logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topicName string, audit logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		audit:      audit,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
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
	event, err := events.Decode(msg.Payload)
	if err != nil {
		cs.audit.Warn(auditModule, "Dropping undecodable message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite redelivery
		return
	}

	details := make(map[string]interface{}, len(event.Payload())+1)
	for k, v := range event.Payload() {
		details[k] = v
	}
	details["occurred_at"] = event.Timestamp()
	cs.audit.Info(auditModule, event.EventType(), details)
	msg.Ack()
}
