package events

import (
	"context"
	"encoding/json"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const maxLoggedPayload = 256

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// HandlerFunc reacts to a single decoded question event.
type HandlerFunc func(ctx context.Context, event QuestionEvent) error

// Consumer reads question events as part of a consumer group. Every fetched
// message is committed, including malformed ones and ones the handler failed
// on, so a bad event never blocks the partition.
type Consumer struct {
	reader messageReader
	logger *logging.Logger
}

func NewConsumer(brokers []string, topic, groupID string, logger *logging.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
	return newConsumer(reader, logger)
}

func newConsumer(reader messageReader, logger *logging.Logger) *Consumer {
	return &Consumer{reader: reader, logger: logger}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context, handle HandlerFunc) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info(ctx, "Consumer shutting down")
				return
			}
			c.logger.Error(ctx, "Failed to fetch message", zap.Error(err))
			continue
		}

		var event QuestionEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Warn(ctx, "Failed to unmarshal message",
				zap.String("topic", msg.Topic),
				zap.ByteString("value", truncateBytes(msg.Value, maxLoggedPayload)),
				zap.Error(err),
			)
		} else if err := handle(ctx, event); err != nil {
			c.logger.Error(ctx, "Failed to handle event",
				zap.String("event_type", string(event.EventType)),
				zap.Int64("question_id", event.QuestionID),
				zap.Error(err),
			)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error(ctx, "Failed to commit message", zap.Error(err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

func truncateBytes(data []byte, max int) []byte {
	if len(data) <= max {
		return data
	}
	return data[:max]
}
