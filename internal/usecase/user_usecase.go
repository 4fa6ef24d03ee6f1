package usecase

import (
	"context"
	"errors"
	"time"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/pkg/logger"
	"kodeksa-backend/pkg/notify"
	"kodeksa-backend/pkg/slug"
)

func deriveUserSlug(firstName, lastName string) string {
	return slug.Generate(firstName + " " + lastName)
}

// Notifier is the outbound contract for the legacy notification service.
type Notifier interface {
	IsConfigured() bool
	NotifyUserCreation(ctx context.Context, userID string) error
	VerifyUserInfo(ctx context.Context, email string) notify.VerificationResult
}

type userUsecase struct {
	userRepo     domain.UserRepository
	cardConfigUC domain.CardConfigurationUsecase
	curriculumUC domain.CurriculumUsecase
	notifier     Notifier
}

// NewUserUsecase creates a new user usecase. notifier may be nil when
// the legacy notification service is not configured.
func NewUserUsecase(
	userRepo domain.UserRepository,
	cardConfigUC domain.CardConfigurationUsecase,
	curriculumUC domain.CurriculumUsecase,
	notifier Notifier,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:     userRepo,
		cardConfigUC: cardConfigUC,
		curriculumUC: curriculumUC,
		notifier:     notifier,
	}
}

func (uc *userUsecase) List(ctx context.Context, opts domain.UserListOptions) (domain.Page[domain.User], error) {
	opts.Normalize()

	filter := domain.UserFilter{
		Limit:    opts.Limit,
		Offset:   opts.Offset(),
		IsActive: opts.IsActive,
		Search:   opts.Search,
	}

	users, total, err := uc.userRepo.Fetch(ctx, filter)
	if err != nil {
		return domain.Page[domain.User]{}, classify(err, domain.UserDatabaseError)
	}
	return domain.NewPage(users, opts.Page, opts.Limit, total), nil
}

func (uc *userUsecase) GetByID(ctx context.Context, id string, opts domain.UserLoadOptions) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify(err, domain.UserDatabaseError)
	}

	// Relations are loaded without re-checking the user row we already hold.
	if opts.LoadCardConfig {
		cfg, err := uc.cardConfigUC.GetByUserID(ctx, user.ID, false)
		if err == nil {
			user.CardConfiguration = cfg
		} else if !errors.Is(err, domain.ErrCardConfigNotFound) {
			return nil, err
		}
	}
	if opts.LoadCurriculum {
		cur, err := uc.curriculumUC.GetByUserID(ctx, user.ID, false)
		if err == nil {
			user.Curriculum = cur
		} else if !errors.Is(err, domain.ErrCurriculumNotFound) {
			return nil, err
		}
	}
	return user, nil
}

func (uc *userUsecase) GetBySlug(ctx context.Context, slug string) (*domain.User, error) {
	user, err := uc.userRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserSlugNotFound
		}
		return nil, classify(err, domain.UserDatabaseError)
	}
	return user, nil
}

func (uc *userUsecase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify(err, domain.UserDatabaseError)
	}
	return user, nil
}

func (uc *userUsecase) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, domain.BootstrapResult, error) {
	var result domain.BootstrapResult

	// 1. Email uniqueness
	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, result, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, result, classify(err, domain.UserDatabaseError)
	}

	// 2. Resolve the slug from the full name, suffixing on collision
	resolved := input.Slug
	if resolved == "" {
		resolved = deriveUserSlug(input.FirstName, input.LastName)
	}
	if _, err := uc.userRepo.GetBySlug(ctx, resolved); err == nil {
		resolved = resolved + "-" + slugSuffix()
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, result, classify(err, domain.UserDatabaseError)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	showCurriculum := true
	if input.ShowCurriculum != nil {
		showCurriculum = *input.ShowCurriculum
	}

	user := &domain.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Role:           input.Role,
		Slug:           resolved,
		Image:          input.Image,
		IsActive:       isActive,
		ShowCurriculum: showCurriculum,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, result, classify(err, domain.UserDatabaseError)
	}

	// 3. Best-effort defaults. A failing child never rolls back the user;
	// the caller learns what was created from the bootstrap result.
	if cfg, err := uc.cardConfigUC.CreateDefault(ctx, user.ID, true); err != nil {
		logger.Log.Warn("default card configuration not created", "userId", user.ID, "error", err)
	} else {
		user.CardConfiguration = cfg
		result.CardConfigurationCreated = true
	}

	if cur, err := uc.curriculumUC.Create(ctx, user.ID, domain.UpsertCurriculumInput{}, true); err != nil {
		logger.Log.Warn("empty curriculum not created", "userId", user.ID, "error", err)
	} else {
		user.Curriculum = cur
		result.CurriculumCreated = true
	}

	// 4. Fire-and-forget legacy notification. The email score is only
	// logged; a low score never blocks or undoes the registration.
	if uc.notifier != nil && uc.notifier.IsConfigured() {
		go func(userID, email string) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if verdict := uc.notifier.VerifyUserInfo(ctx, email); !verdict.IsValid {
				logger.Log.Warn("legacy service flagged registration email", "userId", userID, "score", verdict.Score)
			}
			if err := uc.notifier.NotifyUserCreation(ctx, userID); err != nil {
				logger.Log.Warn("user creation notification failed", "userId", userID, "error", err)
			}
		}(user.ID, user.Email)
	}

	return user, result, nil
}

func (uc *userUsecase) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify(err, domain.UserDatabaseError)
	}

	if input.Email != nil && *input.Email != user.Email {
		if other, err := uc.userRepo.GetByEmail(ctx, *input.Email); err == nil && other.ID != user.ID {
			return nil, domain.ErrUserExists
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, classify(err, domain.UserDatabaseError)
		}
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil {
		user.Role = input.Role
	}
	if input.Image != nil {
		user.Image = input.Image
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.ShowCurriculum != nil {
		user.ShowCurriculum = *input.ShowCurriculum
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, classify(err, domain.UserDatabaseError)
	}
	return user, nil
}

// Delete is always logical for users; their blogs and curriculum keep
// referencing the row.
func (uc *userUsecase) Delete(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return classify(err, domain.UserDatabaseError)
	}

	user.IsActive = false
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return classify(err, domain.UserDatabaseError)
	}
	return nil
}
