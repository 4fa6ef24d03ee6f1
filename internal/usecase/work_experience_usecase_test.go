package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/internal/usecase"
)

func year(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func newWorkExpUC() (domain.WorkExperienceUsecase, *MockWorkExperienceRepo, *MockUserRepo) {
	mockExps := new(MockWorkExperienceRepo)
	mockUsers := new(MockUserRepo)
	uc := usecase.NewWorkExperienceUsecase(mockExps, mockUsers)
	return uc, mockExps, mockUsers
}

func TestWorkExperienceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Until date before from date is rejected", func(t *testing.T) {
		uc, _, _ := newWorkExpUC()
		_, err := uc.Create(ctx, "u1", domain.CreateWorkExperienceInput{
			CompanyName: "Kodeksa",
			Role:        "Backend",
			FromYear:    year(2022),
			UntilYear:   ptr(year(2020)),
		})
		assert.ErrorIs(t, err, domain.ErrWorkExperienceDates)
	})

	t.Run("Open-ended roles carry no until date", func(t *testing.T) {
		uc, mockExps, mockUsers := newWorkExpUC()
		mockUsers.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
		mockExps.On("Create", ctx, mock.AnythingOfType("*domain.WorkExperience")).Return(nil)

		exp, err := uc.Create(ctx, "u1", domain.CreateWorkExperienceInput{
			CompanyName: "Kodeksa",
			Role:        "Backend",
			FromYear:    year(2022),
		})
		assert.NoError(t, err)
		assert.Nil(t, exp.UntilYear)
		assert.Equal(t, "u1", exp.UserID)
	})

	t.Run("Unknown user fails before storage", func(t *testing.T) {
		uc, mockExps, mockUsers := newWorkExpUC()
		mockUsers.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.Create(ctx, "ghost", domain.CreateWorkExperienceInput{
			CompanyName: "Kodeksa", Role: "Backend", FromYear: year(2022),
		})
		assert.ErrorIs(t, err, domain.ErrWorkExperienceUser)
		mockExps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestWorkExperienceList(t *testing.T) {
	ctx := context.Background()

	uc, mockExps, _ := newWorkExpUC()
	mockExps.On("Fetch", ctx).Return([]domain.WorkExperience{
		{ID: "we2", UserID: "u2", FromYear: year(2023)},
		{ID: "we1", UserID: "u1", FromYear: year(2020)},
	}, nil)

	exps, err := uc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, exps, 2)
	assert.Equal(t, "we2", exps[0].ID)
}

func TestWorkExperienceUpdateDates(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.WorkExperience {
		return &domain.WorkExperience{
			ID: "we1", UserID: "u1", CompanyName: "Kodeksa", Role: "Backend",
			FromYear: year(2020), UntilYear: ptr(year(2023)),
		}
	}

	t.Run("Merged dates are validated", func(t *testing.T) {
		uc, mockExps, _ := newWorkExpUC()
		mockExps.On("GetByID", ctx, "we1").Return(existing(), nil)

		// moving the start past the stored end
		_, err := uc.Update(ctx, "we1", domain.UpdateWorkExperienceInput{FromYear: ptr(year(2024))})
		assert.ErrorIs(t, err, domain.ErrWorkExperienceDates)
	})

	t.Run("A consistent patch passes", func(t *testing.T) {
		uc, mockExps, _ := newWorkExpUC()
		mockExps.On("GetByID", ctx, "we1").Return(existing(), nil)
		mockExps.On("Update", ctx, mock.AnythingOfType("*domain.WorkExperience")).Return(nil)

		exp, err := uc.Update(ctx, "we1", domain.UpdateWorkExperienceInput{UntilYear: ptr(year(2025))})
		assert.NoError(t, err)
		assert.Equal(t, year(2025), *exp.UntilYear)
	})
}
