package impl

import (
	"context"
	"log/slog"

	"usersvc/config"
	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	validator         service.Validator
	profiles          usecase.ProfileUsecase
	events            eventNotifier
	maskLoginFailures bool
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Validator      service.Validator
	ProfileUsecase usecase.ProfileUsecase
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maskLoginFailures := false
	if params.Config != nil && params.Config.Auth != nil {
		maskLoginFailures = params.Config.Auth.MaskLoginFailures
	}

	return &accountService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		validator:         params.Validator,
		profiles:          params.ProfileUsecase,
		events:            eventNotifier{publisher: params.Publisher, logger: params.Logger},
		maskLoginFailures: maskLoginFailures,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user account. The initial profile is written after the
// account commits and a failure there does not fail the registration.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email is already registered")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check existing account")
		}

		newAccount := &entity.Account{
			Email:        input.Email,
			FullName:     input.FullName,
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
		}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}
		account = newAccount

		return nil
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.createInitialProfile(ctx, account)
	srv.events.notify(ctx, service.EventAccountRegistered, account)

	srv.log(ctx).Debug("Registration completed", slog.Any("account_id", account.ID))

	return account, nil
}

// createInitialProfile seeds an empty profile for a newly registered account.
// It runs detached from the request so a disconnecting client cannot abort it.
func (srv *accountService) createInitialProfile(ctx context.Context, account *entity.Account) {
	detached := context.WithoutCancel(ctx)
	err := srv.txManager.Execute(detached, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProfileRepo().Create(detached, &entity.Profile{
			AccountID: account.ID,
			Email:     account.Email,
			FullName:  account.FullName,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create profile after registration",
			slog.Any("account_id", account.ID),
			slog.Any("error", err),
		)
	}
}

// Login verifies credentials and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		account = found

		return nil
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))
		if srv.maskLoginFailures {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, domainerrors.ErrUserNotFound.WrapMessage("no account is registered for this email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("account_id", account.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(account.Identity())
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("account_id", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("account_id", account.ID))

	return &usecase.LoginOutput{Token: token, Account: account}, nil
}

// UpdateAccount lets the caller update their own account and profile.
func (srv *accountService) UpdateAccount(
	ctx context.Context,
	caller entity.Identity,
	targetID string,
	input *usecase.UpdateProfileInput,
) (*entity.Profile, error) {
	accountID, err := parseAccountID(targetID)
	if err != nil {
		return nil, err
	}

	if accountID != caller.ID {
		srv.log(ctx).Warn("Rejected update of another account",
			slog.Any("caller_id", caller.ID),
			slog.Any("target_id", accountID),
		)

		return nil, domainerrors.ErrForbidden.WrapMessage("accounts can only update themselves")
	}

	return srv.profiles.UpdateOwnProfile(ctx, accountID, input)
}
