package impl

import (
	"context"
	"testing"
	"time"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	mockService "usersvc/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventNotifier_BoundsPublishDeadline(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	notifier := eventNotifier{publisher: publisher, logger: newDiscardLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var (
		published context.Context
		liveErr   error
	)
	publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.AnythingOfType("*service.AccountEvent")).
		Run(func(ctx context.Context, _ *service.AccountEvent) {
			published = ctx
			liveErr = ctx.Err()
		}).
		Return(nil)

	start := time.Now()
	notifier.notify(ctx, service.EventAccountUpdated, &entity.Account{ID: uuid.New(), Role: entity.RoleUser})

	deadline, ok := published.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, start.Add(publishTimeout), deadline, time.Second)
	// The caller's cancellation does not reach the publisher.
	assert.NoError(t, liveErr)
}

func TestEventNotifier_PublishFailureIsSwallowed(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	notifier := eventNotifier{publisher: publisher, logger: newDiscardLogger()}

	publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.AnythingOfType("*service.AccountEvent")).
		Return(errors.New("redis: i/o timeout"))

	assert.NotPanics(t, func() {
		notifier.notify(context.Background(), service.EventAccountDeleted, &entity.Account{ID: uuid.New(), Role: entity.RoleAdmin})
	})
}
