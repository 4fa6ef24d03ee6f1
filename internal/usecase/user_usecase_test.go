package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/internal/usecase"
)

func validUserInput() domain.CreateUserInput {
	return domain.CreateUserInput{
		FirstName: "Laura",
		LastName:  "Martínez",
		Email:     "laura@kodeksa.dev",
	}
}

func TestUserCreateBootstrap(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockUserRepo, *MockCardConfigUsecase, *MockCurriculumUsecase) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", ctx, "laura@kodeksa.dev").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetBySlug", ctx, "laura-martnez").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = "u1"
		})
		return mockRepo, new(MockCardConfigUsecase), new(MockCurriculumUsecase)
	}

	t.Run("Creates both default child records", func(t *testing.T) {
		mockRepo, mockCardCfg, mockCurriculum := setup()
		mockCardCfg.On("CreateDefault", ctx, "u1", true).Return(&domain.CardConfiguration{ID: "cc1", UserID: "u1"}, nil)
		mockCurriculum.On("Create", ctx, "u1", domain.UpsertCurriculumInput{}, true).Return(&domain.Curriculum{ID: "cu1", UserID: "u1"}, nil)

		uc := usecase.NewUserUsecase(mockRepo, mockCardCfg, mockCurriculum, nil)
		user, result, err := uc.Create(ctx, validUserInput())
		assert.NoError(t, err)
		assert.True(t, result.CardConfigurationCreated)
		assert.True(t, result.CurriculumCreated)
		assert.NotNil(t, user.CardConfiguration)
		assert.NotNil(t, user.Curriculum)
		assert.True(t, user.IsActive)
		assert.True(t, user.ShowCurriculum)
	})

	t.Run("A failing child never rolls back the user", func(t *testing.T) {
		mockRepo, mockCardCfg, mockCurriculum := setup()
		mockCardCfg.On("CreateDefault", ctx, "u1", true).Return(nil, errors.New("insert failed"))
		mockCurriculum.On("Create", ctx, "u1", domain.UpsertCurriculumInput{}, true).Return(&domain.Curriculum{ID: "cu1", UserID: "u1"}, nil)

		uc := usecase.NewUserUsecase(mockRepo, mockCardCfg, mockCurriculum, nil)
		user, result, err := uc.Create(ctx, validUserInput())
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.False(t, result.CardConfigurationCreated)
		assert.True(t, result.CurriculumCreated)
		assert.Nil(t, user.CardConfiguration)
	})

	t.Run("Duplicate email is rejected before creating anything", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", ctx, "laura@kodeksa.dev").Return(&domain.User{ID: "other"}, nil)

		uc := usecase.NewUserUsecase(mockRepo, new(MockCardConfigUsecase), new(MockCurriculumUsecase), nil)
		_, _, err := uc.Create(ctx, validUserInput())
		assert.ErrorIs(t, err, domain.ErrUserExists)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Slug collision gets a suffix", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", ctx, "laura@kodeksa.dev").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetBySlug", ctx, "laura-martnez").Return(&domain.User{ID: "other", Slug: "laura-martnez"}, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = "u1"
		})
		mockCardCfg := new(MockCardConfigUsecase)
		mockCurriculum := new(MockCurriculumUsecase)
		mockCardCfg.On("CreateDefault", ctx, "u1", true).Return(&domain.CardConfiguration{ID: "cc1"}, nil)
		mockCurriculum.On("Create", ctx, "u1", domain.UpsertCurriculumInput{}, true).Return(&domain.Curriculum{ID: "cu1"}, nil)

		uc := usecase.NewUserUsecase(mockRepo, mockCardCfg, mockCurriculum, nil)
		user, _, err := uc.Create(ctx, validUserInput())
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(user.Slug, "laura-martnez-"))
	})

	t.Run("A configured notifier is invoked asynchronously", func(t *testing.T) {
		mockRepo, mockCardCfg, mockCurriculum := setup()
		mockCardCfg.On("CreateDefault", ctx, "u1", true).Return(&domain.CardConfiguration{ID: "cc1"}, nil)
		mockCurriculum.On("Create", ctx, "u1", domain.UpsertCurriculumInput{}, true).Return(&domain.Curriculum{ID: "cu1"}, nil)
		notifier := NewMockNotifier(true)

		uc := usecase.NewUserUsecase(mockRepo, mockCardCfg, mockCurriculum, notifier)
		_, _, err := uc.Create(ctx, validUserInput())
		assert.NoError(t, err)

		select {
		case email := <-notifier.verified:
			assert.Equal(t, "laura@kodeksa.dev", email)
		case <-time.After(2 * time.Second):
			t.Fatal("email was never verified")
		}

		select {
		case userID := <-notifier.notified:
			assert.Equal(t, "u1", userID)
		case <-time.After(2 * time.Second):
			t.Fatal("notifier was never called")
		}
	})
}

func TestUserGetByIDRelations(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing child records are tolerated on load", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", IsActive: true}, nil)
		mockCardCfg := new(MockCardConfigUsecase)
		mockCurriculum := new(MockCurriculumUsecase)
		mockCardCfg.On("GetByUserID", ctx, "u1", false).Return(nil, domain.ErrCardConfigNotFound)
		mockCurriculum.On("GetByUserID", ctx, "u1", false).Return(nil, domain.ErrCurriculumNotFound)

		uc := usecase.NewUserUsecase(mockRepo, mockCardCfg, mockCurriculum, nil)
		user, err := uc.GetByID(ctx, "u1", domain.UserLoadOptions{LoadCardConfig: true, LoadCurriculum: true})
		assert.NoError(t, err)
		assert.Nil(t, user.CardConfiguration)
		assert.Nil(t, user.Curriculum)
	})

	t.Run("Relations are skipped unless requested", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
		mockCardCfg := new(MockCardConfigUsecase)
		mockCurriculum := new(MockCurriculumUsecase)

		uc := usecase.NewUserUsecase(mockRepo, mockCardCfg, mockCurriculum, nil)
		_, err := uc.GetByID(ctx, "u1", domain.UserLoadOptions{})
		assert.NoError(t, err)
		mockCardCfg.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything, mock.Anything)
		mockCurriculum.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserUpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Email change colliding with another user fails", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "laura@kodeksa.dev"}, nil)
		mockRepo.On("GetByEmail", ctx, "taken@kodeksa.dev").Return(&domain.User{ID: "u2", Email: "taken@kodeksa.dev"}, nil)

		uc := usecase.NewUserUsecase(mockRepo, new(MockCardConfigUsecase), new(MockCurriculumUsecase), nil)
		_, err := uc.Update(ctx, "u1", domain.UpdateUserInput{Email: ptr("taken@kodeksa.dev")})
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("Delete is always logical", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", IsActive: true}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			assert.False(t, args.Get(1).(*domain.User).IsActive)
		})

		uc := usecase.NewUserUsecase(mockRepo, new(MockCardConfigUsecase), new(MockCurriculumUsecase), nil)
		assert.NoError(t, uc.Delete(ctx, "u1"))
		mockRepo.AssertExpectations(t)
	})
}
