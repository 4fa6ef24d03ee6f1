package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/internal/usecase"
)

func openVacancy() *domain.Vacancy {
	return &domain.Vacancy{
		ID:       "v1",
		JobTitle: "Backend Developer",
		Status:   domain.VacancyStatusOpen,
		IsActive: true,
	}
}

func validApplicationInput() domain.CreateApplicationInput {
	return domain.CreateApplicationInput{
		VacancyID: "v1",
		Name:      "Ana García",
		Email:     "ana@example.com",
		Phone:     "+34 600 000 000",
	}
}

func TestApplicationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject malformed email before touching storage", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")

		input := validApplicationInput()
		input.Email = "not-an-email"
		_, err := uc.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrApplicationInvalidEmail)
		mockVacancies.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should fail when the vacancy does not exist", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockVacancies.On("GetByID", ctx, "v1").Return(nil, domain.ErrNotFound)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")
		_, err := uc.Create(ctx, validApplicationInput())
		assert.ErrorIs(t, err, domain.ErrApplicationVacancyMissed)
	})

	t.Run("Should fail when the vacancy is not open", func(t *testing.T) {
		closed := openVacancy()
		closed.Status = domain.VacancyStatusClosed

		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockVacancies.On("GetByID", ctx, "v1").Return(closed, nil)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")
		_, err := uc.Create(ctx, validApplicationInput())
		assert.ErrorIs(t, err, domain.ErrApplicationVacancyClosed)
	})

	t.Run("Should reject a duplicate (vacancy, email) pair", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockVacancies.On("GetByID", ctx, "v1").Return(openVacancy(), nil)
		mockApps.On("GetByVacancyAndEmail", ctx, "v1", "ana@example.com").
			Return(&domain.Application{ID: "a1", VacancyID: "v1", Email: "ana@example.com"}, nil)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")
		_, err := uc.Create(ctx, validApplicationInput())
		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	})

	t.Run("Should force status to pending regardless of input", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockVacancies.On("GetByID", ctx, "v1").Return(openVacancy(), nil)
		mockApps.On("GetByVacancyAndEmail", ctx, "v1", "ana@example.com").Return(nil, domain.ErrNotFound)
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")
		app, err := uc.Create(ctx, validApplicationInput())
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.True(t, app.IsActive)
	})

	t.Run("Applications to an inactive but open vacancy are accepted", func(t *testing.T) {
		inactive := openVacancy()
		inactive.IsActive = false

		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockVacancies.On("GetByID", ctx, "v1").Return(inactive, nil)
		mockApps.On("GetByVacancyAndEmail", ctx, "v1", "ana@example.com").Return(nil, domain.ErrNotFound)
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")
		_, err := uc.Create(ctx, validApplicationInput())
		assert.NoError(t, err)
	})
}

func TestApplicationCreateWithCV(t *testing.T) {
	ctx := context.Background()
	cv := domain.CVFile{Filename: "cv.pdf", Data: []byte("pdf-bytes")}

	t.Run("Should reject an inactive vacancy", func(t *testing.T) {
		inactive := openVacancy()
		inactive.IsActive = false

		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockVacancies.On("GetByID", ctx, "v1").Return(inactive, nil)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, new(MockUploader), "cvs")
		_, err := uc.CreateWithCV(ctx, validApplicationInput(), cv)
		assert.ErrorIs(t, err, domain.ErrVacancyInactive)
	})

	t.Run("Should fail with upload error when storage is not configured", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockVacancies.On("GetByID", ctx, "v1").Return(openVacancy(), nil)
		mockApps.On("GetByVacancyAndEmail", ctx, "v1", "ana@example.com").Return(nil, domain.ErrNotFound)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")
		_, err := uc.CreateWithCV(ctx, validApplicationInput(), cv)
		assert.ErrorIs(t, err, domain.ErrCVUpload)
	})

	t.Run("Should attach the uploaded CV URL", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockUploader := new(MockUploader)
		mockVacancies.On("GetByID", ctx, "v1").Return(openVacancy(), nil)
		mockApps.On("GetByVacancyAndEmail", ctx, "v1", "ana@example.com").Return(nil, domain.ErrNotFound)
		mockUploader.On("Upload", ctx, cv.Data, "cv.pdf", "cvs").Return("https://cdn.example.com/cvs/cv.pdf", nil)
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, mockUploader, "cvs")
		app, err := uc.CreateWithCV(ctx, validApplicationInput(), cv)
		assert.NoError(t, err)
		if assert.NotNil(t, app.CvURL) {
			assert.Equal(t, "https://cdn.example.com/cvs/cv.pdf", *app.CvURL)
		}
	})

	t.Run("Should clean up the upload when persistence fails", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockUploader := new(MockUploader)
		mockVacancies.On("GetByID", ctx, "v1").Return(openVacancy(), nil)
		mockApps.On("GetByVacancyAndEmail", ctx, "v1", "ana@example.com").Return(nil, domain.ErrNotFound)
		mockUploader.On("Upload", ctx, cv.Data, "cv.pdf", "cvs").Return("https://cdn.example.com/cvs/cv.pdf", nil)
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(errors.New("insert failed"))
		mockUploader.On("Delete", ctx, "https://cdn.example.com/cvs/cv.pdf").Return(nil)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, mockUploader, "cvs")
		_, err := uc.CreateWithCV(ctx, validApplicationInput(), cv)
		assert.Error(t, err)
		mockUploader.AssertCalled(t, "Delete", ctx, "https://cdn.example.com/cvs/cv.pdf")
	})
}

func TestApplicationUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject unknown status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockVacancyRepo), nil, "cvs")
		_, err := uc.UpdateStatus(ctx, "a1", "shortlisted")
		assert.ErrorIs(t, err, domain.ErrApplicationInvalidStatus)
	})

	t.Run("Should allow moving backwards in the flow", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("UpdateStatus", ctx, "a1", domain.ApplicationStatusPending).Return(nil)
		mockApps.On("GetByID", ctx, "a1").Return(&domain.Application{
			ID: "a1", Status: domain.ApplicationStatusPending,
		}, nil)

		uc := usecase.NewApplicationUsecase(mockApps, new(MockVacancyRepo), nil, "cvs")
		app, err := uc.UpdateStatus(ctx, "a1", domain.ApplicationStatusPending)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	})
}

func TestApplicationDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Logical delete only deactivates, keeping the status", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("GetByID", ctx, "a1").Return(&domain.Application{
			ID: "a1", Status: domain.ApplicationStatusAccepted, IsActive: true,
		}, nil)
		mockApps.On("Update", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.False(t, app.IsActive)
			assert.Equal(t, domain.ApplicationStatusAccepted, app.Status)
		})

		uc := usecase.NewApplicationUsecase(mockApps, new(MockVacancyRepo), nil, "cvs")
		assert.NoError(t, uc.Delete(ctx, "a1", false))
		mockApps.AssertExpectations(t)
	})

	t.Run("Physical delete removes the row", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("Delete", ctx, "a1").Return(nil)

		uc := usecase.NewApplicationUsecase(mockApps, new(MockVacancyRepo), nil, "cvs")
		assert.NoError(t, uc.Delete(ctx, "a1", true))
	})
}

func TestApplicationUpdateRevalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Changing email checks uniqueness against the current vacancy", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockApps.On("GetByID", ctx, "a1").Return(&domain.Application{
			ID: "a1", VacancyID: "v1", Email: "old@example.com", IsActive: true,
		}, nil)
		mockApps.On("GetByVacancyAndEmail", ctx, "v1", "new@example.com").
			Return(&domain.Application{ID: "a2", VacancyID: "v1", Email: "new@example.com"}, nil)

		uc := usecase.NewApplicationUsecase(mockApps, new(MockVacancyRepo), nil, "cvs")
		_, err := uc.Update(ctx, "a1", domain.UpdateApplicationInput{Email: ptr("new@example.com")})
		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	})

	t.Run("Moving to another vacancy requires it to be open", func(t *testing.T) {
		closed := &domain.Vacancy{ID: "v2", Status: domain.VacancyStatusClosed, IsActive: true}

		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockApps.On("GetByID", ctx, "a1").Return(&domain.Application{
			ID: "a1", VacancyID: "v1", Email: "ana@example.com", IsActive: true,
		}, nil)
		mockVacancies.On("GetByID", ctx, "v2").Return(closed, nil)

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")
		_, err := uc.Update(ctx, "a1", domain.UpdateApplicationInput{VacancyID: ptr("v2")})
		assert.ErrorIs(t, err, domain.ErrApplicationVacancyClosed)
	})

	t.Run("Moving to an open vacancy persists the new vacancy id", func(t *testing.T) {
		open := &domain.Vacancy{ID: "v2", Status: domain.VacancyStatusOpen, IsActive: true}

		mockApps := new(MockApplicationRepo)
		mockVacancies := new(MockVacancyRepo)
		mockApps.On("GetByID", ctx, "a1").Return(&domain.Application{
			ID: "a1", VacancyID: "v1", Email: "ana@example.com", IsActive: true,
		}, nil)
		mockVacancies.On("GetByID", ctx, "v2").Return(open, nil)
		mockApps.On("GetByVacancyAndEmail", ctx, "v2", "ana@example.com").Return(nil, domain.ErrNotFound)
		mockApps.On("Update", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			assert.Equal(t, "v2", args.Get(1).(*domain.Application).VacancyID)
		})

		uc := usecase.NewApplicationUsecase(mockApps, mockVacancies, nil, "cvs")
		app, err := uc.Update(ctx, "a1", domain.UpdateApplicationInput{VacancyID: ptr("v2")})
		assert.NoError(t, err)
		assert.Equal(t, "v2", app.VacancyID)
		mockApps.AssertExpectations(t)
	})
}
