package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/config"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/events"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	zapLogger, err := logging.NewZap(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	logger := logging.New(zapLogger)
	defer logger.Sync()

	if !cfg.EventsEnabled() {
		logger.Fatal(ctx, "KAFKA_BROKERS is required")
	}

	logger.Info(ctx, "Starting notification consumer",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	consumer := events.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, logger)
	defer consumer.Close()

	consumer.Run(ctx, func(ctx context.Context, event events.QuestionEvent) error {
		fields := []zap.Field{
			zap.Int64("question_id", event.QuestionID),
			zap.Time("occurred_at", event.OccurredAt),
		}
		switch event.EventType {
		case events.EventQuestionCreated:
			logger.Info(ctx, "New question waiting for staff", append(fields, zap.Strings("tags", event.Tags))...)
		case events.EventQuestionAnswered:
			logger.Info(ctx, "Question answered, notifying student", append(fields, zap.String("answered_by", event.AnsweredBy))...)
		case events.EventQuestionReminder:
			logger.Warn(ctx, "Question still unanswered", fields...)
		default:
			logger.Debug(ctx, "Ignoring unknown event", zap.String("event_type", string(event.EventType)))
		}
		return nil
	})
}
