package impl

import (
	"context"
	"testing"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:           "ann@example.com",
		FullName:        "Ann Example",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	f := newServiceFixtures(t)
	f.runInTx()
	published := f.capturePublished()

	ctx := context.Background()
	input := validRegisterInput()
	accountID := uuid.New()

	f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Email == input.Email && a.FullName == input.FullName &&
				a.PasswordHash == "hashed" && a.Role == entity.RoleUser
		})).
		Run(func(_ context.Context, a *entity.Account) { a.ID = accountID }).
		Return(nil)
	f.profileRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.AccountID == accountID && p.Email == input.Email && p.FullName == input.FullName
		})).
		Return(nil)

	account, err := f.accountService(nil).Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, entity.RoleUser, account.Role)
	require.Len(t, *published, 1)
	assert.Equal(t, service.EventAccountRegistered, (*published)[0].Type)
	assert.Equal(t, accountID.String(), (*published)[0].AccountID)
}

func TestAccountService_Register_ProfileFailureIsSwallowed(t *testing.T) {
	f := newServiceFixtures(t)
	f.runInTx()
	f.capturePublished()

	ctx := context.Background()
	input := validRegisterInput()

	f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	f.profileRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Profile")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create profile"))

	account, err := f.accountService(nil).Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, account.Email)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	f := newServiceFixtures(t)
	f.runInTx()

	ctx := context.Background()
	input := validRegisterInput()

	f.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

	_, err := f.accountService(nil).Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Register_ValidationRunsFirst(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
		field  string
		msg    string
	}{
		{
			name:   "passwords differ",
			mutate: func(in *usecase.RegisterInput) { in.ConfirmPassword = "secret2" },
			field:  "confirmPassword",
			msg:    "passwords do not match",
		},
		{
			name:   "bad email",
			mutate: func(in *usecase.RegisterInput) { in.Email = "not-an-email" },
			field:  "email",
			msg:    "invalid email format",
		},
		{
			name:   "short name",
			mutate: func(in *usecase.RegisterInput) { in.FullName = "Al" },
			field:  "fullName",
			msg:    "must be at least 3 characters long",
		},
		{
			name: "short password",
			mutate: func(in *usecase.RegisterInput) {
				in.Password = "abc"
				in.ConfirmPassword = "abc"
			},
			field: "password",
			msg:   "must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixtures(t)
			input := validRegisterInput()
			tt.mutate(input)

			_, err := f.accountService(nil).Register(context.Background(), input)

			require.Error(t, err)
			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

			var found bool
			for _, v := range domainerrors.Violations(appErr) {
				if v.Field == tt.field {
					found = true
					assert.Equal(t, tt.msg, v.Message)
				}
			}
			assert.True(t, found, "no violation reported for %s", tt.field)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "ann@example.com",
		FullName:     "Ann Example",
		PasswordHash: "hashed",
		Role:         entity.RoleAdmin,
	}

	t.Run("success", func(t *testing.T) {
		f := newServiceFixtures(t)
		f.runInTx()
		ctx := context.Background()

		f.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
		f.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		f.tokens.EXPECT().Issue(account.Identity()).Return("signed-token", nil)

		out, err := f.accountService(nil).Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, account, out.Account)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newServiceFixtures(t)
		f.runInTx()
		ctx := context.Background()

		f.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
		f.hasher.EXPECT().Check("nope-nope", "hashed").Return(false)

		_, err := f.accountService(nil).Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "nope-nope"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newServiceFixtures(t)
		f.runInTx()
		ctx := context.Background()

		f.accountRepo.EXPECT().FindByEmail(ctx, "who@example.com").Return(nil, repository.ErrAccountNotFound)

		_, err := f.accountService(nil).Login(ctx, &usecase.LoginInput{Email: "who@example.com", Password: "secret1"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("unknown email masked", func(t *testing.T) {
		f := newServiceFixtures(t)
		f.runInTx()
		ctx := context.Background()
		cfg := &config.Config{Auth: &config.AuthConfig{MaskLoginFailures: true}}

		f.accountRepo.EXPECT().FindByEmail(ctx, "who@example.com").Return(nil, repository.ErrAccountNotFound)

		_, err := f.accountService(cfg).Login(ctx, &usecase.LoginInput{Email: "who@example.com", Password: "secret1"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAccountService_UpdateAccount_RejectsOtherAccounts(t *testing.T) {
	f := newServiceFixtures(t)
	caller := entity.Identity{ID: uuid.New(), Role: entity.RoleUser}

	// An invalid payload must not turn the ownership failure into a validation failure.
	input := &usecase.UpdateProfileInput{Email: strPtr("not-an-email")}

	_, err := f.accountService(nil).UpdateAccount(context.Background(), caller, uuid.NewString(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAccountService_UpdateAccount_MalformedID(t *testing.T) {
	f := newServiceFixtures(t)
	caller := entity.Identity{ID: uuid.New(), Role: entity.RoleUser}

	_, err := f.accountService(nil).UpdateAccount(context.Background(), caller, "42", &usecase.UpdateProfileInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidID))
}

func TestAccountService_UpdateAccount_Self(t *testing.T) {
	f := newServiceFixtures(t)
	f.runInTx()
	f.capturePublished()

	ctx := context.Background()
	caller := entity.Identity{ID: uuid.New(), Role: entity.RoleUser}
	account := &entity.Account{ID: caller.ID, Email: "ann@example.com", FullName: "Ann"}
	profile := &entity.Profile{AccountID: caller.ID, Email: account.Email, FullName: account.FullName}
	updated := &entity.Profile{AccountID: caller.ID, Email: account.Email, FullName: account.FullName, UserLocation: strPtr("Lisbon")}

	f.accountRepo.EXPECT().FindByID(ctx, caller.ID).Return(account, nil)
	f.profileRepo.EXPECT().FindByAccountID(ctx, caller.ID).Return(profile, nil)
	f.profileRepo.EXPECT().
		Update(ctx, caller.ID, entity.ProfileUpdate{UserLocation: strPtr("Lisbon")}).
		Return(updated, nil)

	got, err := f.accountService(nil).UpdateAccount(ctx, caller, caller.ID.String(), &usecase.UpdateProfileInput{
		UserLocation: strPtr("Lisbon"),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
