package service

import (
	"context"
	"testing"
	"time"

	"officehub-be/internal/pkg/logger"
	"officehub-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsumerService_WritesAuditTrail(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	consumer := NewConsumerService(pubSub, "trash.events", logger.NewFromZap(zap.New(core)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	publisher := events.NewWatermillPublisher(pubSub, "trash.events")
	require.NoError(t, publisher.Publish(ctx, events.New(events.TypeTrashMoved, map[string]interface{}{
		"item_type": "note",
	})))
	require.NoError(t, pubSub.Publish("trash.events", message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	assert.Eventually(t, func() bool {
		return logs.FilterMessage(events.TypeTrashMoved).Len() == 1 &&
			logs.FilterMessage("Dropping undecodable message").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	entry := logs.FilterMessage(events.TypeTrashMoved).All()[0]
	assert.Equal(t, auditModule, entry.ContextMap()["module"])
	details, ok := entry.ContextMap()["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "note", details["item_type"])
	assert.Contains(t, details, "occurred_at")
}
