package usecase

import (
	"context"
	"errors"

	"kodeksa-backend/internal/domain"
)

type curriculumUsecase struct {
	curriculumRepo domain.CurriculumRepository
	userRepo       domain.UserRepository
	skillRepo      domain.SkillRepository
	workExpRepo    domain.WorkExperienceRepository
}

// NewCurriculumUsecase creates a new curriculum usecase
func NewCurriculumUsecase(
	curriculumRepo domain.CurriculumRepository,
	userRepo domain.UserRepository,
	skillRepo domain.SkillRepository,
	workExpRepo domain.WorkExperienceRepository,
) domain.CurriculumUsecase {
	return &curriculumUsecase{
		curriculumRepo: curriculumRepo,
		userRepo:       userRepo,
		skillRepo:      skillRepo,
		workExpRepo:    workExpRepo,
	}
}

// loadRelations attaches the owning user's skills and work experiences;
// both hang off the user, not the curriculum row itself.
func (uc *curriculumUsecase) loadRelations(ctx context.Context, cur *domain.Curriculum) error {
	skills, err := uc.skillRepo.FetchByUser(ctx, cur.UserID)
	if err != nil {
		return classify(err, domain.CurriculumDatabaseError)
	}
	cur.Skills = skills

	exps, err := uc.workExpRepo.FetchByUser(ctx, cur.UserID)
	if err != nil {
		return classify(err, domain.CurriculumDatabaseError)
	}
	cur.WorkExperiences = exps
	return nil
}

func (uc *curriculumUsecase) GetByID(ctx context.Context, id string) (*domain.Curriculum, error) {
	cur, err := uc.curriculumRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCurriculumNotFound
		}
		return nil, classify(err, domain.CurriculumDatabaseError)
	}
	if err := uc.loadRelations(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (uc *curriculumUsecase) GetByUserID(ctx context.Context, userID string, checkUserExists bool) (*domain.Curriculum, error) {
	if checkUserExists {
		if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrCurriculumUser
			}
			return nil, classify(err, domain.CurriculumDatabaseError)
		}
	}

	cur, err := uc.curriculumRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCurriculumNotFound
		}
		return nil, classify(err, domain.CurriculumDatabaseError)
	}
	if err := uc.loadRelations(ctx, cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (uc *curriculumUsecase) Create(ctx context.Context, userID string, input domain.UpsertCurriculumInput, skipUserCheck bool) (*domain.Curriculum, error) {
	if !skipUserCheck {
		if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrCurriculumUser
			}
			return nil, classify(err, domain.CurriculumDatabaseError)
		}
	}

	if _, err := uc.curriculumRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.ErrCurriculumExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, classify(err, domain.CurriculumDatabaseError)
	}

	cur := &domain.Curriculum{
		UserID:       userID,
		AboutMe:      input.AboutMe,
		GithubSlug:   input.GithubSlug,
		LinkedinSlug: input.LinkedinSlug,
	}
	if err := uc.curriculumRepo.Create(ctx, cur); err != nil {
		return nil, classify(err, domain.CurriculumDatabaseError)
	}
	return cur, nil
}

func (uc *curriculumUsecase) Update(ctx context.Context, id string, input domain.UpsertCurriculumInput) (*domain.Curriculum, error) {
	cur, err := uc.curriculumRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCurriculumNotFound
		}
		return nil, classify(err, domain.CurriculumDatabaseError)
	}

	applyCurriculumPatch(cur, input)

	if err := uc.curriculumRepo.Update(ctx, cur); err != nil {
		return nil, classify(err, domain.CurriculumDatabaseError)
	}
	return cur, nil
}

// CreateOrUpdate upserts the curriculum keyed by user, which is what
// the profile editor always calls.
func (uc *curriculumUsecase) CreateOrUpdate(ctx context.Context, userID string, input domain.UpsertCurriculumInput) (*domain.Curriculum, error) {
	cur, err := uc.curriculumRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uc.Create(ctx, userID, input, false)
		}
		return nil, classify(err, domain.CurriculumDatabaseError)
	}

	applyCurriculumPatch(cur, input)

	if err := uc.curriculumRepo.Update(ctx, cur); err != nil {
		return nil, classify(err, domain.CurriculumDatabaseError)
	}
	return cur, nil
}

func (uc *curriculumUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.curriculumRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCurriculumNotFound
		}
		return classify(err, domain.CurriculumDatabaseError)
	}
	return nil
}

func applyCurriculumPatch(cur *domain.Curriculum, input domain.UpsertCurriculumInput) {
	if input.AboutMe != nil {
		cur.AboutMe = input.AboutMe
	}
	if input.GithubSlug != nil {
		cur.GithubSlug = input.GithubSlug
	}
	if input.LinkedinSlug != nil {
		cur.LinkedinSlug = input.LinkedinSlug
	}
}
