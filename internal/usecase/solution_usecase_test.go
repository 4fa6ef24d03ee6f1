package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/internal/usecase"
)

func TestSolutionCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Feature strings become active features", func(t *testing.T) {
		mockRepo := new(MockSolutionRepo)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Solution")).Return(nil)

		uc := usecase.NewSolutionUsecase(mockRepo)
		solution, err := uc.Create(ctx, domain.CreateSolutionInput{
			Title:       "Desarrollo a medida",
			Icon:        "code",
			Description: "Construimos tu producto",
			Features:    []string{"APIs", "Integraciones"},
		})
		assert.NoError(t, err)
		assert.True(t, solution.IsActive)
		assert.Equal(t, 0, solution.Order)
		if assert.Len(t, solution.Features, 2) {
			assert.Equal(t, "APIs", solution.Features[0].FeatureDescription)
			assert.True(t, solution.Features[0].IsActive)
		}
	})
}

func TestSolutionGetByIDLoadsFeatures(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockSolutionRepo)
	mockRepo.On("GetByID", ctx, "sol1").Return(&domain.Solution{ID: "sol1", Title: "Cloud"}, nil)
	mockRepo.On("FetchFeatures", ctx, "sol1").Return([]domain.Feature{{ID: "f1", SolutionID: "sol1"}}, nil)

	uc := usecase.NewSolutionUsecase(mockRepo)
	solution, err := uc.GetByID(ctx, "sol1")
	assert.NoError(t, err)
	assert.Len(t, solution.Features, 1)
}

func TestSolutionListIncludeFeatures(t *testing.T) {
	ctx := context.Background()

	t.Run("Features load only when requested", func(t *testing.T) {
		mockRepo := new(MockSolutionRepo)
		mockRepo.On("Fetch", ctx, mock.AnythingOfType("domain.SolutionFilter")).
			Return([]domain.Solution{{ID: "sol1"}}, int64(1), nil)

		uc := usecase.NewSolutionUsecase(mockRepo)
		page, err := uc.List(ctx, domain.SolutionListOptions{})
		assert.NoError(t, err)
		assert.Len(t, page.Items, 1)
		mockRepo.AssertNotCalled(t, "FetchFeatures", mock.Anything, mock.Anything)
	})

	t.Run("IncludeFeatures hydrates every solution", func(t *testing.T) {
		mockRepo := new(MockSolutionRepo)
		mockRepo.On("Fetch", ctx, mock.AnythingOfType("domain.SolutionFilter")).
			Return([]domain.Solution{{ID: "sol1"}, {ID: "sol2"}}, int64(2), nil)
		mockRepo.On("FetchFeatures", ctx, "sol1").Return([]domain.Feature{{ID: "f1"}}, nil)
		mockRepo.On("FetchFeatures", ctx, "sol2").Return([]domain.Feature{}, nil)

		uc := usecase.NewSolutionUsecase(mockRepo)
		page, err := uc.List(ctx, domain.SolutionListOptions{IncludeFeatures: true})
		assert.NoError(t, err)
		assert.Len(t, page.Items[0].Features, 1)
	})
}

func TestSolutionDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Logical delete only deactivates", func(t *testing.T) {
		mockRepo := new(MockSolutionRepo)
		mockRepo.On("GetByID", ctx, "sol1").Return(&domain.Solution{ID: "sol1", IsActive: true}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Solution")).Return(nil).Run(func(args mock.Arguments) {
			assert.False(t, args.Get(1).(*domain.Solution).IsActive)
		})

		err := usecase.NewSolutionUsecase(mockRepo).Delete(ctx, "sol1", false)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Physical delete removes the row and its features", func(t *testing.T) {
		mockRepo := new(MockSolutionRepo)
		mockRepo.On("Delete", ctx, "sol1").Return(nil)

		err := usecase.NewSolutionUsecase(mockRepo).Delete(ctx, "sol1", true)
		assert.NoError(t, err)
	})
}

func TestSolutionFeatures(t *testing.T) {
	ctx := context.Background()

	t.Run("AddFeature requires the solution to exist", func(t *testing.T) {
		mockRepo := new(MockSolutionRepo)
		mockRepo.On("GetByID", ctx, "nope").Return(nil, domain.ErrNotFound)

		_, err := usecase.NewSolutionUsecase(mockRepo).AddFeature(ctx, "nope", domain.CreateFeatureInput{
			FeatureDescription: "Soporte 24/7",
		})
		assert.ErrorIs(t, err, domain.ErrSolutionNotFound)
	})

	t.Run("Features of another solution are treated as missing", func(t *testing.T) {
		mockRepo := new(MockSolutionRepo)
		mockRepo.On("GetFeature", ctx, "f9").Return(&domain.Feature{ID: "f9", SolutionID: "other"}, nil)

		err := usecase.NewSolutionUsecase(mockRepo).DeleteFeature(ctx, "sol1", "f9")
		assert.ErrorIs(t, err, domain.ErrFeatureNotFound)
	})

	t.Run("UpdateFeature patches description and active flag", func(t *testing.T) {
		mockRepo := new(MockSolutionRepo)
		mockRepo.On("GetFeature", ctx, "f1").Return(&domain.Feature{
			ID: "f1", SolutionID: "sol1", FeatureDescription: "vieja", IsActive: true,
		}, nil)
		mockRepo.On("UpdateFeature", ctx, mock.AnythingOfType("*domain.Feature")).Return(nil)

		feature, err := usecase.NewSolutionUsecase(mockRepo).UpdateFeature(ctx, "sol1", "f1", domain.UpdateFeatureInput{
			FeatureDescription: ptr("nueva"),
			IsActive:           ptr(false),
		})
		assert.NoError(t, err)
		assert.Equal(t, "nueva", feature.FeatureDescription)
		assert.False(t, feature.IsActive)
	})
}
