package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"usersvc/config"
	"usersvc/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_DefaultsToNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := New(Params{
		Lifecycle: lc,
		Config:    &config.Config{Events: &config.EventsConfig{}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, noopPublisher{}, publisher)

	require.NoError(t, publisher.PublishAccountEvent(context.Background(), &service.AccountEvent{Type: service.EventAccountCreated}))
	lc.RequireStart().RequireStop()
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Events: &config.EventsConfig{Provider: "kafka"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka")
}

func TestRedisStreamPublisher_ReportsUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	publisher := NewRedisStreamPublisher(client, "test:events", slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = publisher.Close() })

	event := &service.AccountEvent{Type: service.EventAccountDeleted, AccountID: "abc"}
	err := publisher.PublishAccountEvent(context.Background(), event)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "account.deleted")
	assert.False(t, event.OccurredAt.IsZero())
}
