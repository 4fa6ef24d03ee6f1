package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/pkg/logger"
	"kodeksa-backend/pkg/storage"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	vacancyRepo     domain.VacancyRepository
	uploader        storage.Uploader
	cvFolder        string
	validate        *validator.Validate
}

// NewApplicationUsecase creates a new application usecase. uploader may
// be nil when object storage is not configured; CreateWithCV then fails
// with the CV upload error instead of panicking.
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	vacancyRepo domain.VacancyRepository,
	uploader storage.Uploader,
	cvFolder string,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		vacancyRepo:     vacancyRepo,
		uploader:        uploader,
		cvFolder:        cvFolder,
		validate:        validator.New(),
	}
}

func (uc *applicationUsecase) List(ctx context.Context, opts domain.ApplicationListOptions, vacancyID string) (domain.Page[domain.Application], error) {
	opts.Normalize()

	filter := domain.ApplicationFilter{
		Limit:     opts.Limit,
		Offset:    opts.Offset(),
		IsActive:  opts.IsActive,
		Status:    opts.Status,
		VacancyID: vacancyID,
		Search:    opts.Search,
	}

	apps, total, err := uc.applicationRepo.Fetch(ctx, filter)
	if err != nil {
		return domain.Page[domain.Application]{}, classify(err, domain.ApplicationDatabaseError)
	}
	return domain.NewPage(apps, opts.Page, opts.Limit, total), nil
}

func (uc *applicationUsecase) ListByVacancy(ctx context.Context, vacancyID string, opts domain.ApplicationListOptions) (domain.Page[domain.Application], error) {
	if _, err := uc.vacancyRepo.GetByID(ctx, vacancyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Page[domain.Application]{}, domain.ErrApplicationVacancyMissed
		}
		return domain.Page[domain.Application]{}, classify(err, domain.ApplicationDatabaseError)
	}
	return uc.List(ctx, opts, vacancyID)
}

func (uc *applicationUsecase) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, classify(err, domain.ApplicationDatabaseError)
	}
	return app, nil
}

// checkVacancyAccepts validates that the vacancy exists and is open.
// requireActive additionally rejects inactive vacancies, which only the
// CV upload path enforces.
func (uc *applicationUsecase) checkVacancyAccepts(ctx context.Context, vacancyID string, requireActive bool) error {
	vacancy, err := uc.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrApplicationVacancyMissed
		}
		return classify(err, domain.ApplicationDatabaseError)
	}
	if requireActive && !vacancy.IsActive {
		return domain.ErrVacancyInactive
	}
	if vacancy.Status != domain.VacancyStatusOpen {
		return domain.ErrApplicationVacancyClosed
	}
	return nil
}

func (uc *applicationUsecase) checkDuplicate(ctx context.Context, vacancyID, email, excludeID string) error {
	existing, err := uc.applicationRepo.GetByVacancyAndEmail(ctx, vacancyID, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return classify(err, domain.ApplicationDatabaseError)
	}
	if existing.ID != excludeID {
		return domain.ErrAlreadyApplied
	}
	return nil
}

func (uc *applicationUsecase) Create(ctx context.Context, input domain.CreateApplicationInput) (*domain.Application, error) {
	// 1. Validate email format
	if err := uc.validate.Var(input.Email, "required,email"); err != nil {
		return nil, domain.ErrApplicationInvalidEmail
	}

	// 2. Vacancy must exist and be open
	if err := uc.checkVacancyAccepts(ctx, input.VacancyID, false); err != nil {
		return nil, err
	}

	// 3. One application per (vacancy, email)
	if err := uc.checkDuplicate(ctx, input.VacancyID, input.Email, ""); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	app := &domain.Application{
		VacancyID:             input.VacancyID,
		Name:                  input.Name,
		Email:                 input.Email,
		Phone:                 input.Phone,
		ApplicationMotivation: input.ApplicationMotivation,
		CvURL:                 input.CvURL,
		Status:                domain.ApplicationStatusPending,
		IsActive:              isActive,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, classify(err, domain.ApplicationDatabaseError)
	}
	return app, nil
}

func (uc *applicationUsecase) CreateWithCV(ctx context.Context, input domain.CreateApplicationInput, cv domain.CVFile) (*domain.Application, error) {
	if err := uc.validate.Var(input.Email, "required,email"); err != nil {
		return nil, domain.ErrApplicationInvalidEmail
	}
	if err := uc.checkVacancyAccepts(ctx, input.VacancyID, true); err != nil {
		return nil, err
	}
	if err := uc.checkDuplicate(ctx, input.VacancyID, input.Email, ""); err != nil {
		return nil, err
	}

	if uc.uploader == nil || len(cv.Data) == 0 {
		return nil, domain.ErrCVUpload
	}

	cvURL, err := uc.uploader.Upload(ctx, cv.Data, cv.Filename, uc.cvFolder)
	if err != nil {
		logger.Log.Error("cv upload failed", "vacancyId", input.VacancyID, "error", err)
		return nil, domain.ErrCVUpload
	}
	input.CvURL = &cvURL

	app, err := uc.Create(ctx, input)
	if err != nil {
		// Best-effort cleanup of the orphaned upload.
		if delErr := uc.uploader.Delete(ctx, cvURL); delErr != nil {
			logger.Log.Warn("orphaned cv not removed", "url", cvURL, "error", delErr)
		}
		return nil, err
	}
	return app, nil
}

func (uc *applicationUsecase) Update(ctx context.Context, id string, input domain.UpdateApplicationInput) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, classify(err, domain.ApplicationDatabaseError)
	}

	effectiveEmail := app.Email
	if input.Email != nil {
		if err := uc.validate.Var(*input.Email, "required,email"); err != nil {
			return nil, domain.ErrApplicationInvalidEmail
		}
		effectiveEmail = *input.Email
	}

	// Moving to another vacancy revalidates the target and uniqueness
	// with the effective email.
	vacancyChanged := input.VacancyID != nil && *input.VacancyID != app.VacancyID
	if vacancyChanged {
		if err := uc.checkVacancyAccepts(ctx, *input.VacancyID, false); err != nil {
			return nil, err
		}
		app.VacancyID = *input.VacancyID
	}
	if vacancyChanged || (input.Email != nil && *input.Email != app.Email) {
		if err := uc.checkDuplicate(ctx, app.VacancyID, effectiveEmail, app.ID); err != nil {
			return nil, err
		}
	}

	app.Email = effectiveEmail
	if input.Name != nil {
		app.Name = *input.Name
	}
	if input.Phone != nil {
		app.Phone = *input.Phone
	}
	if input.ApplicationMotivation != nil {
		app.ApplicationMotivation = input.ApplicationMotivation
	}
	if input.CvURL != nil {
		app.CvURL = input.CvURL
	}
	if input.IsActive != nil {
		app.IsActive = *input.IsActive
	}

	if err := uc.applicationRepo.Update(ctx, app); err != nil {
		return nil, classify(err, domain.ApplicationDatabaseError)
	}
	return app, nil
}

// UpdateStatus accepts any transition between valid statuses; the
// recruiting flow deliberately allows moving back and forth.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, id, status string) (*domain.Application, error) {
	if !domain.IsValidApplicationStatus(status) {
		return nil, domain.ErrApplicationInvalidStatus
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, classify(err, domain.ApplicationDatabaseError)
	}
	return uc.GetByID(ctx, id)
}

// Delete removes an application. Unlike vacancies, the logical path
// only flips isActive; the status is left as-is for the audit trail.
func (uc *applicationUsecase) Delete(ctx context.Context, id string, physical bool) error {
	if physical {
		if err := uc.applicationRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrApplicationNotFound
			}
			return classify(err, domain.ApplicationDatabaseError)
		}
		return nil
	}

	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrApplicationNotFound
		}
		return classify(err, domain.ApplicationDatabaseError)
	}

	app.IsActive = false
	if err := uc.applicationRepo.Update(ctx, app); err != nil {
		return classify(err, domain.ApplicationDatabaseError)
	}
	return nil
}
