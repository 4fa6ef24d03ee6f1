package usecase

import (
	"context"
	"errors"

	"kodeksa-backend/internal/domain"
)

type cardConfigurationUsecase struct {
	cardConfigRepo domain.CardConfigurationRepository
	userRepo       domain.UserRepository
}

// NewCardConfigurationUsecase creates a new card configuration usecase
func NewCardConfigurationUsecase(
	cardConfigRepo domain.CardConfigurationRepository,
	userRepo domain.UserRepository,
) domain.CardConfigurationUsecase {
	return &cardConfigurationUsecase{
		cardConfigRepo: cardConfigRepo,
		userRepo:       userRepo,
	}
}

func (uc *cardConfigurationUsecase) GetByID(ctx context.Context, id string) (*domain.CardConfiguration, error) {
	cfg, err := uc.cardConfigRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCardConfigNotFound
		}
		return nil, classify(err, domain.CardConfigDatabaseError)
	}
	return cfg, nil
}

func (uc *cardConfigurationUsecase) GetByUserID(ctx context.Context, userID string, checkUserExists bool) (*domain.CardConfiguration, error) {
	if checkUserExists {
		if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrCardConfigUser
			}
			return nil, classify(err, domain.CardConfigDatabaseError)
		}
	}

	cfg, err := uc.cardConfigRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCardConfigNotFound
		}
		return nil, classify(err, domain.CardConfigDatabaseError)
	}
	return cfg, nil
}

// Create provisions a configuration seeded with the bootstrap defaults;
// any styling field supplied in the input overrides its default.
func (uc *cardConfigurationUsecase) Create(ctx context.Context, userID string, input domain.UpdateCardConfigurationInput, skipUserCheck bool) (*domain.CardConfiguration, error) {
	if !skipUserCheck {
		if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrCardConfigUser
			}
			return nil, classify(err, domain.CardConfigDatabaseError)
		}
	}

	if _, err := uc.cardConfigRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.ErrCardConfigExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, classify(err, domain.CardConfigDatabaseError)
	}

	cfg := domain.DefaultCardConfiguration(userID)
	applyCardConfigPatch(cfg, input)
	if err := uc.cardConfigRepo.Create(ctx, cfg); err != nil {
		return nil, classify(err, domain.CardConfigDatabaseError)
	}
	return cfg, nil
}

// CreateDefault provisions the bootstrap defaults for a user. The user
// bootstrap path passes skipUserCheck since it just created the row.
func (uc *cardConfigurationUsecase) CreateDefault(ctx context.Context, userID string, skipUserCheck bool) (*domain.CardConfiguration, error) {
	return uc.Create(ctx, userID, domain.UpdateCardConfigurationInput{}, skipUserCheck)
}

func (uc *cardConfigurationUsecase) Update(ctx context.Context, id string, input domain.UpdateCardConfigurationInput) (*domain.CardConfiguration, error) {
	cfg, err := uc.cardConfigRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCardConfigNotFound
		}
		return nil, classify(err, domain.CardConfigDatabaseError)
	}

	applyCardConfigPatch(cfg, input)

	if err := uc.cardConfigRepo.Update(ctx, cfg); err != nil {
		return nil, classify(err, domain.CardConfigDatabaseError)
	}
	return cfg, nil
}

// Reset restores the neutral Arial defaults while keeping the row
// identity and the user link.
func (uc *cardConfigurationUsecase) Reset(ctx context.Context, id string) (*domain.CardConfiguration, error) {
	cfg, err := uc.cardConfigRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCardConfigNotFound
		}
		return nil, classify(err, domain.CardConfigDatabaseError)
	}

	reset := domain.ResetCardConfiguration(cfg.UserID)
	reset.ID = cfg.ID
	reset.CreatedAt = cfg.CreatedAt

	if err := uc.cardConfigRepo.Update(ctx, reset); err != nil {
		return nil, classify(err, domain.CardConfigDatabaseError)
	}
	return reset, nil
}

func (uc *cardConfigurationUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.cardConfigRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCardConfigNotFound
		}
		return classify(err, domain.CardConfigDatabaseError)
	}
	return nil
}

func applyCardConfigPatch(cfg *domain.CardConfiguration, input domain.UpdateCardConfigurationInput) {
	if input.ImageSize != nil {
		cfg.ImageSize = *input.ImageSize
	}
	if input.BgColor != nil {
		cfg.BgColor = *input.BgColor
	}
	if input.TextAbove != nil {
		cfg.TextAbove = *input.TextAbove
	}
	if input.TextAboveColor != nil {
		cfg.TextAboveColor = *input.TextAboveColor
	}
	if input.AboveFontFamily != nil {
		cfg.AboveFontFamily = *input.AboveFontFamily
	}
	if input.AboveFontSize != nil {
		cfg.AboveFontSize = *input.AboveFontSize
	}
	if input.AboveFontWeight != nil {
		cfg.AboveFontWeight = *input.AboveFontWeight
	}
	if input.AboveLetterSpacing != nil {
		cfg.AboveLetterSpacing = *input.AboveLetterSpacing
	}
	if input.AboveTextTransform != nil {
		cfg.AboveTextTransform = *input.AboveTextTransform
	}
	if input.AboveTextTopOffset != nil {
		cfg.AboveTextTopOffset = *input.AboveTextTopOffset
	}
	if input.TextBelow != nil {
		cfg.TextBelow = *input.TextBelow
	}
	if input.TextBelowColor != nil {
		cfg.TextBelowColor = *input.TextBelowColor
	}
	if input.BelowFontFamily != nil {
		cfg.BelowFontFamily = *input.BelowFontFamily
	}
	if input.BelowFontSize != nil {
		cfg.BelowFontSize = *input.BelowFontSize
	}
	if input.BelowFontWeight != nil {
		cfg.BelowFontWeight = *input.BelowFontWeight
	}
	if input.BelowLetterSpacing != nil {
		cfg.BelowLetterSpacing = *input.BelowLetterSpacing
	}
	if input.BelowTextTransform != nil {
		cfg.BelowTextTransform = *input.BelowTextTransform
	}
}
