package impl

import (
	"context"
	"log/slog"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type profileService struct {
	txManager repository.TransactionManager
	validator service.Validator
	events    eventNotifier
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Validator service.Validator
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		validator: params.Validator,
		events:    eventNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOwnProfile returns the profile of the given account.
func (srv *profileService) GetOwnProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile has not been created")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateOwnProfile applies a partial update to the account and its profile in one transaction.
func (srv *profileService) UpdateOwnProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	accountUpdate := entity.AccountUpdate{
		Email:    input.Email,
		FullName: input.FullName,
	}
	profileUpdate := entity.ProfileUpdate{
		Email:          input.Email,
		FullName:       input.FullName,
		PhoneNumber:    input.PhoneNumber,
		UserLocation:   input.UserLocation,
		ImageReference: input.ImageReference,
	}

	var (
		account *entity.Account
		profile *entity.Profile
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		current, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return mapAccountError(err, "failed to load account")
		}

		if input.Email != nil && *input.Email != current.Email {
			if err := ensureEmailAvailable(ctx, accountRepo, *input.Email, accountID); err != nil {
				return err
			}
		}

		account = current
		if !accountUpdate.IsEmpty() {
			account, err = accountRepo.Update(ctx, accountID, accountUpdate)
			if err != nil {
				return mapAccountError(err, "failed to update account")
			}
		}

		profile, err = upsertProfile(ctx, repoFactory.ProfileRepo(), account, profileUpdate)

		return err
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Profile update failed", slog.Any("account_id", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	if !profileUpdate.IsEmpty() {
		srv.events.notify(ctx, service.EventAccountUpdated, account)
	}

	return profile, nil
}
