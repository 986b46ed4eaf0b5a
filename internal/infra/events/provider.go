// Package events publishes account lifecycle events after they have been committed.
package events

import (
	"context"
	"log/slog"
	"strings"

	"usersvc/config"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies of the publisher provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New selects the publisher named by events.provider and closes it on shutdown.
func New(params Params) (service.EventPublisher, error) {
	cfg := params.Config.Events

	var publisher service.EventPublisher
	switch strings.ToLower(cfg.Provider) {
	case config.EventsProviderRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		publisher = NewRedisStreamPublisher(client, cfg.Stream, params.Logger)
		params.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to connect to redis")
				}

				return nil
			},
		})
		params.Logger.Info("Account events go to a Redis stream",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("stream", cfg.Stream),
		)
	case config.EventsProviderNone, "":
		publisher = NewNoopPublisher()
	default:
		return nil, errors.Errorf("unknown events provider: %s", cfg.Provider)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher() service.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishAccountEvent(context.Context, *service.AccountEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
