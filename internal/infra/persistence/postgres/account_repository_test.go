package postgres

import (
	"context"
	"fmt"
	"testing"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	return Configure(testutil.NewDB(t), testutil.DiscardLogger(), nil)
}

func createAccount(t *testing.T, repo repository.AccountRepository, email, name string, role entity.Role) *entity.Account {
	t.Helper()

	account := &entity.Account{Email: email, FullName: name, PasswordHash: "hash", Role: role}
	require.NoError(t, repo.Create(context.Background(), account))

	return account
}

func ptr[T any](v T) *T {
	return &v
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	account := createAccount(t, repo, "a@x.io", "Ann Lee", "")
	require.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, byte(7), account.ID[6]>>4, "expected a version 7 id")
	assert.False(t, account.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", byID.Email)
	assert.Equal(t, entity.RoleUser, byID.Role)
	assert.Equal(t, "hash", byID.PasswordHash)

	byEmail, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "A@X.IO")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	createAccount(t, repo, "a@x.io", "Ann Lee", entity.RoleUser)

	err := repo.Create(context.Background(), &entity.Account{Email: "a@x.io", FullName: "Other", PasswordHash: "h"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := createAccount(t, repo, "a@x.io", "Ann Lee", entity.RoleUser)
	other := createAccount(t, repo, "b@x.io", "Bob Ray", entity.RoleUser)

	updated, err := repo.Update(ctx, account.ID, entity.AccountUpdate{FullName: ptr("Ann Smith"), Role: ptr(entity.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, "Ann Smith", updated.FullName)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.Equal(t, "a@x.io", updated.Email)

	unchanged, err := repo.Update(ctx, account.ID, entity.AccountUpdate{})
	require.NoError(t, err)
	assert.Equal(t, updated.FullName, unchanged.FullName)

	_, err = repo.Update(ctx, other.ID, entity.AccountUpdate{Email: ptr("a@x.io")})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	_, err = repo.Update(ctx, uuid.New(), entity.AccountUpdate{FullName: ptr("Nobody")})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_Delete(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()
	account := createAccount(t, repo, "a@x.io", "Ann Lee", entity.RoleUser)

	require.NoError(t, repo.Delete(ctx, account.ID))
	assert.ErrorIs(t, repo.Delete(ctx, account.ID), repository.ErrAccountNotFound)

	_, err := repo.FindByID(ctx, account.ID)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_List(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	createAccount(t, repo, "alice@x.io", "Alice Doe", entity.RoleUser)
	createAccount(t, repo, "bob@x.io", "Bob Smith", entity.RoleAdmin)
	createAccount(t, repo, "carol@y.io", "Carol SMITH", entity.RoleUser)
	createAccount(t, repo, "100%_real@x.io", "Percent", entity.RoleUser)

	tests := []struct {
		name   string
		filter entity.AccountFilter
		want   []string
	}{
		{name: "all newest first", filter: entity.AccountFilter{Limit: 10}, want: []string{"100%_real@x.io", "carol@y.io", "bob@x.io", "alice@x.io"}},
		{name: "role", filter: entity.AccountFilter{Role: ptr(entity.RoleAdmin), Limit: 10}, want: []string{"bob@x.io"}},
		{name: "search name case-insensitive", filter: entity.AccountFilter{Search: "smith", Limit: 10}, want: []string{"carol@y.io", "bob@x.io"}},
		{name: "search email", filter: entity.AccountFilter{Search: "Y.IO", Limit: 10}, want: []string{"carol@y.io"}},
		{name: "search and role", filter: entity.AccountFilter{Search: "smith", Role: ptr(entity.RoleUser), Limit: 10}, want: []string{"carol@y.io"}},
		{name: "wildcards are literal", filter: entity.AccountFilter{Search: "%_", Limit: 10}, want: []string{"100%_real@x.io"}},
		{name: "offset", filter: entity.AccountFilter{Offset: 3, Limit: 10}, want: []string{"alice@x.io"}},
		{name: "no match", filter: entity.AccountFilter{Search: "zzz", Limit: 10}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts, total, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			got := make([]string, 0, len(accounts))
			for _, a := range accounts {
				got = append(got, a.Email)
			}
			assert.Equal(t, tt.want, got)
			if tt.filter.Offset == 0 {
				assert.Equal(t, int64(len(tt.want)), total)
			}
		})
	}
}

func TestAccountRepository_List_PagesPartitionResults(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	for i := range 23 {
		createAccount(t, repo, fmt.Sprintf("user%02d@x.io", i), fmt.Sprintf("User %02d", i), entity.RoleUser)
	}

	seen := map[uuid.UUID]int{}
	const limit = 5
	for offset := 0; offset < 23; offset += limit {
		page, total, err := repo.List(ctx, entity.AccountFilter{Offset: offset, Limit: limit})
		require.NoError(t, err)
		assert.Equal(t, int64(23), total)
		for _, a := range page {
			seen[a.ID]++
		}
	}

	assert.Len(t, seen, 23)
	for id, n := range seen {
		assert.Equal(t, 1, n, "account %s appeared on more than one page", id)
	}
}
