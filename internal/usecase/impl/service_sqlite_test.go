package impl

import (
	"context"
	"fmt"
	"testing"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/infra/auth"
	"usersvc/internal/infra/events"
	"usersvc/internal/infra/persistence/postgres"
	"usersvc/internal/infra/validation"
	"usersvc/internal/testutil"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sqliteHarness wires the real services against a throwaway SQLite database.
type sqliteHarness struct {
	db       *gorm.DB
	tokens   service.TokenService
	accounts usecase.AccountUsecase
	profiles usecase.ProfileUsecase
	admin    usecase.AdminUsecase
}

func newSQLiteHarness(t *testing.T) *sqliteHarness {
	t.Helper()

	db := postgres.Configure(testutil.NewDB(t), testutil.DiscardLogger(), nil)
	txManager := postgres.NewTransactionManager(db)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	validator := validation.New()
	publisher := events.NewNoopPublisher()
	logger := testutil.DiscardLogger()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "integration-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	profiles := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Validator: validator,
		Publisher: publisher,
		Logger:    logger,
	})

	return &sqliteHarness{
		db:     db,
		tokens: tokens,
		accounts: NewAccountService(AccountServiceParams{
			TxManager:      txManager,
			Hasher:         hasher,
			TokenService:   tokens,
			Validator:      validator,
			ProfileUsecase: profiles,
			Publisher:      publisher,
			Config:         cfg,
			Logger:         logger,
		}),
		profiles: profiles,
		admin: NewAdminService(AdminServiceParams{
			TxManager: txManager,
			Hasher:    hasher,
			Validator: validator,
			Publisher: publisher,
			Logger:    logger,
		}),
	}
}

func (h *sqliteHarness) register(t *testing.T, email, fullName string) *entity.Account {
	t.Helper()

	account, err := h.accounts.Register(context.Background(), &usecase.RegisterInput{
		Email:           email,
		FullName:        fullName,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	return account
}

func TestSQLite_RegisterLoginAndVerify(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	account := h.register(t, "ann@example.com", "Ann Example")

	out, err := h.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)

	identity, err := h.tokens.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, identity.ID)
	assert.Equal(t, entity.RoleUser, identity.Role)

	profile, err := h.profiles.GetOwnProfile(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann Example", profile.FullName)
	assert.Equal(t, "ann@example.com", profile.Email)

	_, err = h.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@example.com", Password: "secret2"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSQLite_DuplicateRegistrationIsRejected(t *testing.T) {
	h := newSQLiteHarness(t)
	h.register(t, "ann@example.com", "Ann Example")

	_, err := h.accounts.Register(context.Background(), &usecase.RegisterInput{
		Email:           "ann@example.com",
		FullName:        "Someone Else",
		Password:        "secret9",
		ConfirmPassword: "secret9",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	assert.Equal(t, int64(1), testutil.Count(t, h.db, "accounts"))
}

func TestSQLite_RegistrationSurvivesProfileFailure(t *testing.T) {
	h := newSQLiteHarness(t)
	testutil.FailOn(t, h.db, "INSERT", "profiles")

	account := h.register(t, "ann@example.com", "Ann Example")

	assert.Equal(t, int64(1), testutil.Count(t, h.db, "accounts"))
	assert.Zero(t, testutil.Count(t, h.db, "profiles"))

	_, err := h.profiles.GetOwnProfile(context.Background(), account.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestSQLite_SelfUpdateIsAtomic(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()
	account := h.register(t, "ann@example.com", "Ann Example")
	restore := testutil.FailOn(t, h.db, "UPDATE", "profiles")

	_, err := h.profiles.UpdateOwnProfile(ctx, account.ID, &usecase.UpdateProfileInput{FullName: strPtr("Ann Renamed")})
	require.Error(t, err)

	restore()
	admin, err := h.admin.GetUser(ctx, account.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ann Example", admin.FullName)
	assert.Equal(t, "Ann Example", admin.Profile.FullName)

	_, err = h.profiles.UpdateOwnProfile(ctx, account.ID, &usecase.UpdateProfileInput{FullName: strPtr("Ann Renamed")})
	require.NoError(t, err)

	admin, err = h.admin.GetUser(ctx, account.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ann Renamed", admin.FullName)
	assert.Equal(t, "Ann Renamed", admin.Profile.FullName)
}

func TestSQLite_SelfUpdateCreatesMissingProfile(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()
	restore := testutil.FailOn(t, h.db, "INSERT", "profiles")
	account := h.register(t, "ann@example.com", "Ann Example")
	restore()

	profile, err := h.profiles.UpdateOwnProfile(ctx, account.ID, &usecase.UpdateProfileInput{PhoneNumber: strPtr("0123456789")})

	require.NoError(t, err)
	assert.Equal(t, "Ann Example", profile.FullName)
	assert.Equal(t, "ann@example.com", profile.Email)
	require.NotNil(t, profile.PhoneNumber)
	assert.Equal(t, "0123456789", *profile.PhoneNumber)
	assert.Equal(t, int64(1), testutil.Count(t, h.db, "profiles"))
}

func TestSQLite_EmptyUpdateChangesNothing(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()
	account := h.register(t, "ann@example.com", "Ann Example")

	before, err := h.profiles.GetOwnProfile(ctx, account.ID)
	require.NoError(t, err)

	after, err := h.profiles.UpdateOwnProfile(ctx, account.ID, &usecase.UpdateProfileInput{})
	require.NoError(t, err)

	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt))
	assert.Equal(t, before.FullName, after.FullName)
	assert.Equal(t, before.PhoneNumber, after.PhoneNumber)
}

func TestSQLite_AdminCreateIsAtomic(t *testing.T) {
	h := newSQLiteHarness(t)
	testutil.FailOn(t, h.db, "INSERT", "profiles")

	_, err := h.admin.CreateUser(context.Background(), &usecase.AdminCreateUserInput{
		Email:    "new@example.com",
		FullName: "New",
		Password: "secret1",
	}, nil)

	require.Error(t, err)
	assert.Zero(t, testutil.Count(t, h.db, "accounts"))
	assert.Zero(t, testutil.Count(t, h.db, "profiles"))
}

func TestSQLite_AdminDeleteIsAtomic(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()
	account := h.register(t, "ann@example.com", "Ann Example")
	restore := testutil.FailOn(t, h.db, "DELETE", "accounts")

	_, err := h.admin.DeleteUser(ctx, account.ID.String())
	require.Error(t, err)
	assert.Equal(t, int64(1), testutil.Count(t, h.db, "profiles"))

	restore()
	out, err := h.admin.DeleteUser(ctx, account.ID.String())
	require.NoError(t, err)
	assert.Equal(t, deleteUserMessage, out.Message)
	assert.Zero(t, testutil.Count(t, h.db, "accounts"))
	assert.Zero(t, testutil.Count(t, h.db, "profiles"))

	_, err = h.admin.DeleteUser(ctx, account.ID.String())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestSQLite_AdminUpdateIsAtomic(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()
	account := h.register(t, "ann@example.com", "Ann Example")
	restore := testutil.FailOn(t, h.db, "UPDATE", "profiles")

	_, err := h.admin.UpdateUser(ctx, account.ID.String(), &usecase.AdminUpdateUserInput{
		Email:    strPtr("ann.new@example.com"),
		FullName: strPtr("Ann Renamed"),
	}, nil)
	require.Error(t, err)

	restore()
	got, err := h.admin.GetUser(ctx, account.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got.Email)
	assert.Equal(t, "Ann Example", got.FullName)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "ann@example.com", got.Profile.Email)
	assert.Equal(t, "Ann Example", got.Profile.FullName)

	_, err = h.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestSQLite_AdminUpdateIsAtomicWhenCreatingProfile(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	created, err := h.admin.CreateUser(ctx, &usecase.AdminCreateUserInput{
		Email:    "bob@example.com",
		FullName: "Bob",
		Password: "secret1",
	}, nil)
	require.NoError(t, err)
	require.Zero(t, testutil.Count(t, h.db, "profiles"))

	restore := testutil.FailOn(t, h.db, "INSERT", "profiles")
	_, err = h.admin.UpdateUser(ctx, created.ID.String(), &usecase.AdminUpdateUserInput{
		Email:    strPtr("bob.new@example.com"),
		FullName: strPtr("Bob Renamed"),
	}, nil)
	require.Error(t, err)
	restore()

	got, err := h.admin.GetUser(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)
	assert.Equal(t, "Bob", got.FullName)
	assert.Nil(t, got.Profile)
	assert.Zero(t, testutil.Count(t, h.db, "profiles"))
}

func TestSQLite_AdminUpdateOnlyTouchesProfileWhenNeeded(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	created, err := h.admin.CreateUser(ctx, &usecase.AdminCreateUserInput{
		Email:    "boss@example.com",
		FullName: "Boss",
		Password: "secret1",
		Role:     "admin",
	}, nil)
	require.NoError(t, err)
	assert.Zero(t, testutil.Count(t, h.db, "profiles"))

	got, err := h.admin.UpdateUser(ctx, created.ID.String(), &usecase.AdminUpdateUserInput{Role: strPtr("user")}, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, got.Role)
	assert.Nil(t, got.Profile)
	assert.Zero(t, testutil.Count(t, h.db, "profiles"))

	got, err = h.admin.UpdateUser(ctx, created.ID.String(), &usecase.AdminUpdateUserInput{UserLocation: strPtr("Oslo")}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "boss@example.com", got.Profile.Email)
	assert.Equal(t, int64(1), testutil.Count(t, h.db, "profiles"))

	out, err := h.accounts.Login(ctx, &usecase.LoginInput{Email: "boss@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Account.Role)
}

func TestSQLite_PaginationCoversEveryAccountOnce(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()

	const total = 23
	want := make(map[uuid.UUID]bool, total)
	for i := range total {
		account, err := h.admin.CreateUser(ctx, &usecase.AdminCreateUserInput{
			Email:    fmt.Sprintf("user%02d@example.com", i),
			FullName: fmt.Sprintf("User %02d", i),
			Password: "secret1",
		}, nil)
		require.NoError(t, err)
		want[account.ID] = true
	}

	seen := make(map[uuid.UUID]bool, total)
	for page := 1; ; page++ {
		out, err := h.admin.ListUsers(ctx, &usecase.ListUsersInput{Page: page, Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, out.Pagination.TotalPages)
		assert.Equal(t, int64(total), out.Pagination.TotalUsers)

		if len(out.Users) == 0 {
			break
		}
		for _, u := range out.Users {
			assert.False(t, seen[u.ID], "account %s listed twice", u.ID)
			seen[u.ID] = true
		}
	}

	assert.Equal(t, want, seen)
}

func TestSQLite_ListUsersSearchIsCaseInsensitive(t *testing.T) {
	h := newSQLiteHarness(t)
	ctx := context.Background()
	h.register(t, "ann@example.com", "Ann Example")
	h.register(t, "bob@example.com", "Bob ANNESLEY")
	h.register(t, "cid@example.com", "Cid Other")

	out, err := h.admin.ListUsers(ctx, &usecase.ListUsersInput{Search: "ann"})

	require.NoError(t, err)
	assert.Len(t, out.Users, 2)
	assert.Equal(t, int64(2), out.Pagination.TotalUsers)
}
