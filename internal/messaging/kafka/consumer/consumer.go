package consumer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler processes a single decoded message. Notification dispatch is
// best-effort: a returned error is logged and the message is still committed,
// never redelivered into a retry storm.
type Handler func(ctx context.Context, msg kafkago.Message) error

// Run drains one reader until the context is cancelled.
func Run(ctx context.Context, reader *kafkago.Reader, handler Handler, logger *zap.Logger) {
	log := logger.Named("kafka.consumer").With(zap.String("topic", reader.Config().Topic))
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handler(ctx, msg); err != nil {
			log.Error("handle message failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}
