package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"usersvc/config"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/infra/validation"
	mockRepo "usersvc/internal/mocks/repository"
	mockService "usersvc/internal/mocks/service"
	"usersvc/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// serviceFixtures holds the mocked dependencies shared by the service tests.
type serviceFixtures struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	profileRepo *mockRepo.MockProfileRepository
	hasher      *mockService.MockPasswordHasher
	tokens      *mockService.MockTokenService
	publisher   *mockService.MockEventPublisher
}

func newServiceFixtures(t *testing.T) *serviceFixtures {
	f := &serviceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		hasher:      mockService.NewMockPasswordHasher(t),
		tokens:      mockService.NewMockTokenService(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	f.factory.EXPECT().AccountRepo().Return(f.accountRepo).Maybe()
	f.factory.EXPECT().ProfileRepo().Return(f.profileRepo).Maybe()

	return f
}

// runInTx makes every Execute call run its callback against the mocked repositories.
func (f *serviceFixtures) runInTx() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

// capturePublished records every published event.
func (f *serviceFixtures) capturePublished() *[]*service.AccountEvent {
	var events []*service.AccountEvent
	f.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.AnythingOfType("*service.AccountEvent")).
		Run(func(_ context.Context, event *service.AccountEvent) {
			events = append(events, event)
		}).
		Return(nil)

	return &events
}

func (f *serviceFixtures) profileService() usecase.ProfileUsecase {
	return NewProfileService(ProfileServiceParams{
		TxManager: f.txManager,
		Validator: validation.New(),
		Publisher: f.publisher,
		Logger:    newDiscardLogger(),
	})
}

func (f *serviceFixtures) accountService(cfg *config.Config) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		TxManager:      f.txManager,
		Hasher:         f.hasher,
		TokenService:   f.tokens,
		Validator:      validation.New(),
		ProfileUsecase: f.profileService(),
		Publisher:      f.publisher,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})
}

func (f *serviceFixtures) adminService() usecase.AdminUsecase {
	return NewAdminService(AdminServiceParams{
		TxManager: f.txManager,
		Hasher:    f.hasher,
		Validator: validation.New(),
		Publisher: f.publisher,
		Logger:    newDiscardLogger(),
	})
}
