// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"

	"github.com/google/uuid"
)

// parseAccountID turns a path identifier into an account ID.
func parseAccountID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails([]domainerrors.FieldViolation{{
			Field:   "id",
			Message: "must be a valid UUID",
			Tag:     "uuid",
		}})
	}

	return parsed, nil
}

// mapAccountError converts repository sentinels into the errors callers see.
func mapAccountError(err error, message string) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}

// ensureEmailAvailable rejects an email that already belongs to an account other than owner.
func ensureEmailAvailable(ctx context.Context, accounts repository.AccountRepository, email string, owner uuid.UUID) error {
	existing, err := accounts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email availability")
	}
	if existing.ID != owner {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email is already in use")
	}

	return nil
}

// upsertProfile applies update to the account's profile. A missing profile is
// created from the account's current email and full name plus the update.
// An empty update on an existing profile performs no write.
func upsertProfile(
	ctx context.Context,
	profiles repository.ProfileRepository,
	account *entity.Account,
	update entity.ProfileUpdate,
) (*entity.Profile, error) {
	existing, err := profiles.FindByAccountID(ctx, account.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		profile := &entity.Profile{
			AccountID: account.ID,
			Email:     account.Email,
			FullName:  account.FullName,
		}
		update.Apply(profile)
		if err := profiles.Create(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to create profile")
		}

		return profile, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	if update.IsEmpty() {
		return existing, nil
	}

	updated, err := profiles.Update(ctx, account.ID, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

// eventNotifier publishes committed account changes. Failures are logged, never returned.
type eventNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// publishTimeout bounds how long a committed mutation waits on the event sink.
const publishTimeout = 2 * time.Second

func (n eventNotifier) notify(ctx context.Context, eventType string, account *entity.Account) {
	if n.publisher == nil || account == nil {
		return
	}

	event := &service.AccountEvent{
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:  account.ID.String(),
		Email:      account.Email,
		Role:       account.Role.String(),
		OccurredAt: time.Now().UTC(),
	}
	if actor, ok := deliverycontext.GetIdentityFromContext(ctx); ok {
		event.ActorID = actor.ID.String()
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := n.publisher.PublishAccountEvent(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.String("account_id", event.AccountID),
			slog.Any("error", err),
		)
	}
}

// failureLevel logs client errors at WARN and everything else at ERROR.
func failureLevel(err error) slog.Level {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
		return slog.LevelWarn
	}

	return slog.LevelError
}
