package usecase

import (
	"context"
	"errors"

	"kodeksa-backend/internal/domain"
)

type workExperienceUsecase struct {
	workExpRepo domain.WorkExperienceRepository
	userRepo    domain.UserRepository
}

// NewWorkExperienceUsecase creates a new work experience usecase
func NewWorkExperienceUsecase(
	workExpRepo domain.WorkExperienceRepository,
	userRepo domain.UserRepository,
) domain.WorkExperienceUsecase {
	return &workExperienceUsecase{
		workExpRepo: workExpRepo,
		userRepo:    userRepo,
	}
}

func (uc *workExperienceUsecase) checkUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrWorkExperienceUser
		}
		return classify(err, domain.WorkExperienceDatabaseError)
	}
	return nil
}

// List returns every work experience, most recent start date first.
func (uc *workExperienceUsecase) List(ctx context.Context) ([]domain.WorkExperience, error) {
	exps, err := uc.workExpRepo.Fetch(ctx)
	if err != nil {
		return nil, classify(err, domain.WorkExperienceDatabaseError)
	}
	return exps, nil
}

func (uc *workExperienceUsecase) GetByID(ctx context.Context, id string) (*domain.WorkExperience, error) {
	exp, err := uc.workExpRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrWorkExperienceNotFound
		}
		return nil, classify(err, domain.WorkExperienceDatabaseError)
	}
	return exp, nil
}

func (uc *workExperienceUsecase) ListByUser(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	if err := uc.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	exps, err := uc.workExpRepo.FetchByUser(ctx, userID)
	if err != nil {
		return nil, classify(err, domain.WorkExperienceDatabaseError)
	}
	return exps, nil
}

func (uc *workExperienceUsecase) Create(ctx context.Context, userID string, input domain.CreateWorkExperienceInput) (*domain.WorkExperience, error) {
	// An open-ended role has no until date; a closed one cannot end
	// before it started.
	if input.UntilYear != nil && input.UntilYear.Before(input.FromYear) {
		return nil, domain.ErrWorkExperienceDates
	}

	if err := uc.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	exp := &domain.WorkExperience{
		UserID:          userID,
		CompanyName:     input.CompanyName,
		Role:            input.Role,
		FromYear:        input.FromYear,
		UntilYear:       input.UntilYear,
		RoleDescription: input.RoleDescription,
	}
	if err := uc.workExpRepo.Create(ctx, exp); err != nil {
		return nil, classify(err, domain.WorkExperienceDatabaseError)
	}
	return exp, nil
}

func (uc *workExperienceUsecase) Update(ctx context.Context, id string, input domain.UpdateWorkExperienceInput) (*domain.WorkExperience, error) {
	exp, err := uc.workExpRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrWorkExperienceNotFound
		}
		return nil, classify(err, domain.WorkExperienceDatabaseError)
	}

	if input.CompanyName != nil {
		exp.CompanyName = *input.CompanyName
	}
	if input.Role != nil {
		exp.Role = *input.Role
	}
	if input.FromYear != nil {
		exp.FromYear = *input.FromYear
	}
	if input.UntilYear != nil {
		exp.UntilYear = input.UntilYear
	}
	if input.RoleDescription != nil {
		exp.RoleDescription = input.RoleDescription
	}

	// The merged dates are validated, not just the patch.
	if exp.UntilYear != nil && exp.UntilYear.Before(exp.FromYear) {
		return nil, domain.ErrWorkExperienceDates
	}

	if err := uc.workExpRepo.Update(ctx, exp); err != nil {
		return nil, classify(err, domain.WorkExperienceDatabaseError)
	}
	return exp, nil
}

func (uc *workExperienceUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.workExpRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrWorkExperienceNotFound
		}
		return classify(err, domain.WorkExperienceDatabaseError)
	}
	return nil
}
