package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/pkg/slug"
)

type vacancyUsecase struct {
	vacancyRepo domain.VacancyRepository
}

// NewVacancyUsecase creates a new vacancy usecase
func NewVacancyUsecase(vacancyRepo domain.VacancyRepository) domain.VacancyUsecase {
	return &vacancyUsecase{vacancyRepo: vacancyRepo}
}

// slugSuffix returns the last four digits of the current unix
// millisecond timestamp, used to de-duplicate derived slugs.
func slugSuffix() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return ms[len(ms)-4:]
}

func (uc *vacancyUsecase) List(ctx context.Context, opts domain.VacancyListOptions) (domain.Page[domain.Vacancy], error) {
	opts.Normalize()

	filter := domain.VacancyFilter{
		Limit:    opts.Limit,
		Offset:   opts.Offset(),
		IsActive: opts.IsActive,
		Status:   opts.Status,
		Mode:     opts.Mode,
		Search:   opts.Search,
	}

	vacancies, total, err := uc.vacancyRepo.Fetch(ctx, filter)
	if err != nil {
		return domain.Page[domain.Vacancy]{}, classify(err, domain.VacancyDatabaseError)
	}
	return domain.NewPage(vacancies, opts.Page, opts.Limit, total), nil
}

func (uc *vacancyUsecase) GetByID(ctx context.Context, id string, includeApplications bool) (*domain.Vacancy, error) {
	vacancy, err := uc.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrVacancyNotFound
		}
		return nil, classify(err, domain.VacancyDatabaseError)
	}

	if includeApplications {
		apps, err := uc.vacancyRepo.GetApplications(ctx, vacancy.ID)
		if err != nil {
			return nil, classify(err, domain.VacancyDatabaseError)
		}
		vacancy.Applications = apps
	}
	return vacancy, nil
}

func (uc *vacancyUsecase) GetBySlug(ctx context.Context, s string, includeApplications bool) (*domain.Vacancy, error) {
	vacancy, err := uc.vacancyRepo.GetBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrVacancySlugNotFound
		}
		return nil, classify(err, domain.VacancyDatabaseError)
	}

	if includeApplications {
		apps, err := uc.vacancyRepo.GetApplications(ctx, vacancy.ID)
		if err != nil {
			return nil, classify(err, domain.VacancyDatabaseError)
		}
		vacancy.Applications = apps
	}
	return vacancy, nil
}

func (uc *vacancyUsecase) Create(ctx context.Context, input domain.CreateVacancyInput) (*domain.Vacancy, error) {
	// 1. Validate required fields and enums
	if strings.TrimSpace(input.JobTitle) == "" {
		return nil, domain.ErrVacancyInvalidJobTitle
	}
	if len(input.StackRequired) == 0 {
		return nil, domain.ErrVacancyInvalidStack
	}
	if !domain.IsValidVacancyMode(input.Mode) {
		return nil, domain.ErrVacancyInvalidMode
	}
	status := input.Status
	if status == "" {
		status = domain.VacancyStatusOpen
	}
	if !domain.IsValidVacancyStatus(status) {
		return nil, domain.ErrVacancyInvalidStatus
	}

	// 2. Resolve the slug. Any collision is a conflict at create time;
	// the silent timestamp suffix only applies to title-driven updates.
	source := input.Slug
	if source == "" {
		source = input.JobTitle
	}
	resolved := slug.Generate(source)
	if _, err := uc.vacancyRepo.GetBySlug(ctx, resolved); err == nil {
		return nil, domain.ErrVacancySlugExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, classify(err, domain.VacancyDatabaseError)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	vacancy := &domain.Vacancy{
		JobTitle:         input.JobTitle,
		Slug:             resolved,
		Mode:             input.Mode,
		YearsExperience:  input.YearsExperience,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		StackRequired:    input.StackRequired,
		IsActive:         isActive,
		Status:           status,
	}

	if err := uc.vacancyRepo.Create(ctx, vacancy); err != nil {
		return nil, classify(err, domain.VacancyDatabaseError)
	}
	return vacancy, nil
}

func (uc *vacancyUsecase) Update(ctx context.Context, id string, input domain.UpdateVacancyInput) (*domain.Vacancy, error) {
	vacancy, err := uc.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrVacancyNotFound
		}
		return nil, classify(err, domain.VacancyDatabaseError)
	}

	if input.JobTitle != nil {
		if strings.TrimSpace(*input.JobTitle) == "" {
			return nil, domain.ErrVacancyInvalidJobTitle
		}
		vacancy.JobTitle = *input.JobTitle
	}
	if input.Mode != nil {
		if !domain.IsValidVacancyMode(*input.Mode) {
			return nil, domain.ErrVacancyInvalidMode
		}
		vacancy.Mode = *input.Mode
	}
	if input.Status != nil {
		if !domain.IsValidVacancyStatus(*input.Status) {
			return nil, domain.ErrVacancyInvalidStatus
		}
		vacancy.Status = *input.Status
	}
	if input.StackRequired != nil {
		if len(input.StackRequired) == 0 {
			return nil, domain.ErrVacancyInvalidStack
		}
		vacancy.StackRequired = input.StackRequired
	}
	if input.YearsExperience != nil {
		vacancy.YearsExperience = *input.YearsExperience
	}
	if input.ShortDescription != nil {
		vacancy.ShortDescription = *input.ShortDescription
	}
	if input.Description != nil {
		vacancy.Description = *input.Description
	}
	if input.IsActive != nil {
		vacancy.IsActive = *input.IsActive
	}

	switch {
	case input.Slug != nil:
		// Explicit slug change: collisions are an error.
		resolved := slug.Generate(*input.Slug)
		if resolved != vacancy.Slug {
			if other, err := uc.vacancyRepo.GetBySlug(ctx, resolved); err == nil && other.ID != vacancy.ID {
				return nil, domain.ErrVacancySlugExists
			} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, classify(err, domain.VacancyDatabaseError)
			}
			vacancy.Slug = resolved
		}
	case input.JobTitle != nil:
		// Title change regenerates the slug, suffixing silently on collision.
		resolved := slug.Generate(vacancy.JobTitle)
		if resolved != vacancy.Slug {
			if other, err := uc.vacancyRepo.GetBySlug(ctx, resolved); err == nil && other.ID != vacancy.ID {
				resolved = resolved + "-" + slugSuffix()
			} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, classify(err, domain.VacancyDatabaseError)
			}
			vacancy.Slug = resolved
		}
	}

	if err := uc.vacancyRepo.Update(ctx, vacancy); err != nil {
		return nil, classify(err, domain.VacancyDatabaseError)
	}
	return vacancy, nil
}

func (uc *vacancyUsecase) ChangeStatus(ctx context.Context, id, status string) (*domain.Vacancy, error) {
	if !domain.IsValidVacancyStatus(status) {
		return nil, domain.ErrVacancyInvalidStatus
	}

	vacancy, err := uc.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrVacancyNotFound
		}
		return nil, classify(err, domain.VacancyDatabaseError)
	}

	vacancy.Status = status
	if err := uc.vacancyRepo.Update(ctx, vacancy); err != nil {
		return nil, classify(err, domain.VacancyDatabaseError)
	}
	return vacancy, nil
}

// Delete removes a vacancy. The logical path closes it as well as
// deactivating it so it drops out of the public listing entirely.
func (uc *vacancyUsecase) Delete(ctx context.Context, id string, physical bool) error {
	if physical {
		if err := uc.vacancyRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrVacancyNotFound
			}
			return classify(err, domain.VacancyDatabaseError)
		}
		return nil
	}

	vacancy, err := uc.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrVacancyNotFound
		}
		return classify(err, domain.VacancyDatabaseError)
	}

	vacancy.IsActive = false
	vacancy.Status = domain.VacancyStatusClosed
	if err := uc.vacancyRepo.Update(ctx, vacancy); err != nil {
		return classify(err, domain.VacancyDatabaseError)
	}
	return nil
}
