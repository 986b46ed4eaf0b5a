package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"

	"go.uber.org/fx"
)

const deleteUserMessage = "User and associated profile deleted successfully"

type adminService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	validator service.Validator
	events    eventNotifier
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Validator service.Validator
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAdminService creates the administrative account service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		validator: params.Validator,
		events:    eventNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser creates an account and, for users or when contact details are
// given, its profile. Both rows are written in one transaction.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.AdminCreateUserInput, imageRef *string) (*entity.Account, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	role := entity.RoleUser
	if input.Role != "" {
		role = entity.Role(input.Role)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password for new account", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	profileUpdate := entity.ProfileUpdate{
		PhoneNumber:    input.PhoneNumber,
		UserLocation:   input.UserLocation,
		ImageReference: imageRef,
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
			Role:         role,
		}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account")
		}
		account = newAccount

		if role != entity.RoleUser && profileUpdate.IsEmpty() {
			return nil
		}

		profile := &entity.Profile{
			AccountID: newAccount.ID,
			Email:     newAccount.Email,
			FullName:  newAccount.FullName,
		}
		profileUpdate.Apply(profile)
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Admin account creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.events.notify(ctx, service.EventAccountCreated, account)

	return account, nil
}

// ListUsers returns one page of accounts, newest first.
func (srv *adminService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	if input == nil {
		input = &usecase.ListUsersInput{}
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	page := input.Page
	if page == 0 {
		page = usecase.DefaultPage
	}
	limit := input.Limit
	if limit == 0 {
		limit = usecase.DefaultLimit
	}

	filter := entity.AccountFilter{
		Search: strings.TrimSpace(input.Search),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if input.Role != "" {
		role := entity.Role(input.Role)
		filter.Role = &role
	}

	var (
		accounts []*entity.Account
		total    int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		accounts, total, err = repoFactory.AccountRepo().List(ctx, filter)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	if accounts == nil {
		accounts = []*entity.Account{}
	}
	pagination := entity.NewPagination(page, limit, total)

	return &usecase.ListUsersOutput{
		Users:      accounts,
		Pagination: &pagination,
	}, nil
}

// GetUser returns an account together with its profile, if any.
func (srv *adminService) GetUser(ctx context.Context, id string) (*entity.AccountWithProfile, error) {
	accountID, err := parseAccountID(id)
	if err != nil {
		return nil, err
	}

	result := &entity.AccountWithProfile{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			return mapAccountError(err, "failed to load account")
		}
		result.Account = account

		profile, err := repoFactory.ProfileRepo().FindByAccountID(ctx, accountID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to load profile")
		}
		result.Profile = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return result, nil
}

// UpdateUser applies a partial administrative update. The profile is upserted
// only when a profile-relevant field is supplied; otherwise it is left as is.
func (srv *adminService) UpdateUser(
	ctx context.Context,
	id string,
	input *usecase.AdminUpdateUserInput,
	imageRef *string,
) (*entity.AccountWithProfile, error) {
	accountID, err := parseAccountID(id)
	if err != nil {
		return nil, err
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	accountUpdate := entity.AccountUpdate{
		Email:    input.Email,
		FullName: input.FullName,
	}
	if input.Role != nil {
		role := entity.Role(*input.Role)
		accountUpdate.Role = &role
	}
	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password for account update", slog.Any("account_id", accountID), slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
		}
		accountUpdate.PasswordHash = &hashedPassword
	}

	profileUpdate := entity.ProfileUpdate{
		Email:          input.Email,
		FullName:       input.FullName,
		PhoneNumber:    input.PhoneNumber,
		UserLocation:   input.UserLocation,
		ImageReference: imageRef,
	}

	result := &entity.AccountWithProfile{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		profileRepo := repoFactory.ProfileRepo()

		current, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return mapAccountError(err, "failed to load account")
		}

		if input.Email != nil && *input.Email != current.Email {
			if err := ensureEmailAvailable(ctx, accountRepo, *input.Email, accountID); err != nil {
				return err
			}
		}

		account := current
		if !accountUpdate.IsEmpty() {
			account, err = accountRepo.Update(ctx, accountID, accountUpdate)
			if err != nil {
				return mapAccountError(err, "failed to update account")
			}
		}
		result.Account = account

		if profileUpdate.IsEmpty() {
			profile, err := profileRepo.FindByAccountID(ctx, accountID)
			if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(err, "failed to load profile")
			}
			result.Profile = profile

			return nil
		}

		result.Profile, err = upsertProfile(ctx, profileRepo, account, profileUpdate)

		return err
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Admin account update failed", slog.Any("account_id", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.events.notify(ctx, service.EventAccountUpdated, result.Account)

	return result, nil
}

// DeleteUser removes an account and its profile together.
func (srv *adminService) DeleteUser(ctx context.Context, id string) (*usecase.DeleteUserOutput, error) {
	accountID, err := parseAccountID(id)
	if err != nil {
		return nil, err
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return mapAccountError(err, "failed to load account")
		}

		if _, err := repoFactory.ProfileRepo().DeleteByAccountID(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}

		if err := accountRepo.Delete(ctx, accountID); err != nil {
			return mapAccountError(err, "failed to delete account")
		}
		account = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Admin account deletion failed", slog.Any("account_id", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.events.notify(ctx, service.EventAccountDeleted, account)

	return &usecase.DeleteUserOutput{Message: deleteUserMessage}, nil
}
