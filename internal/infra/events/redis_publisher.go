package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"usersvc/internal/domain/service"
	"usersvc/internal/errors"

	"github.com/redis/go-redis/v9"
)

// redisStreamPublisher appends events to a Redis stream with XADD.
type redisStreamPublisher struct {
	client redis.UniversalClient
	stream string
	logger *slog.Logger
}

// NewRedisStreamPublisher publishes to stream using client. The publisher owns the client.
func NewRedisStreamPublisher(client redis.UniversalClient, stream string, logger *slog.Logger) service.EventPublisher {
	return &redisStreamPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisStreamPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal account event")
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"type":  event.Type,
			"event": payload,
		},
	}).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event", event.Type)
	}

	p.logger.Debug("Published account event",
		slog.String("type", event.Type),
		slog.String("account_id", event.AccountID),
		slog.String("stream_id", id),
	)

	return nil
}

func (p *redisStreamPublisher) Close() error {
	return p.client.Close()
}
