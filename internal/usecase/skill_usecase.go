package usecase

import (
	"context"
	"errors"

	"kodeksa-backend/internal/domain"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
	userRepo  domain.UserRepository
}

// NewSkillUsecase creates a new skill usecase
func NewSkillUsecase(
	skillRepo domain.SkillRepository,
	userRepo domain.UserRepository,
) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo: skillRepo,
		userRepo:  userRepo,
	}
}

func (uc *skillUsecase) checkUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSkillUser
		}
		return classify(err, domain.SkillDatabaseError)
	}
	return nil
}

func (uc *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	skills, err := uc.skillRepo.Fetch(ctx)
	if err != nil {
		return nil, classify(err, domain.SkillDatabaseError)
	}
	return skills, nil
}

func (uc *skillUsecase) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	skill, err := uc.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, classify(err, domain.SkillDatabaseError)
	}
	return skill, nil
}

func (uc *skillUsecase) ListByUser(ctx context.Context, userID string) ([]domain.Skill, error) {
	if err := uc.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	skills, err := uc.skillRepo.FetchByUser(ctx, userID)
	if err != nil {
		return nil, classify(err, domain.SkillDatabaseError)
	}
	return skills, nil
}

func (uc *skillUsecase) Create(ctx context.Context, userID string, input domain.CreateSkillInput) (*domain.Skill, error) {
	if err := uc.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	skill := &domain.Skill{
		UserID:         userID,
		SkillName:      input.SkillName,
		URLCertificate: input.URLCertificate,
	}
	if err := uc.skillRepo.Create(ctx, skill); err != nil {
		return nil, classify(err, domain.SkillDatabaseError)
	}
	return skill, nil
}

func (uc *skillUsecase) Update(ctx context.Context, id string, input domain.UpdateSkillInput) (*domain.Skill, error) {
	skill, err := uc.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, classify(err, domain.SkillDatabaseError)
	}

	if input.SkillName != nil {
		skill.SkillName = *input.SkillName
	}
	if input.URLCertificate != nil {
		skill.URLCertificate = input.URLCertificate
	}

	if err := uc.skillRepo.Update(ctx, skill); err != nil {
		return nil, classify(err, domain.SkillDatabaseError)
	}
	return skill, nil
}

func (uc *skillUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.skillRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSkillNotFound
		}
		return classify(err, domain.SkillDatabaseError)
	}
	return nil
}
