package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

// Curriculum holds the free-form CV header for a user. Skills and work
// experiences hang off it as separate aggregates.
type Curriculum struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	AboutMe      *string   `json:"aboutMe,omitempty"`
	GithubSlug   *string   `json:"githubSlug,omitempty"`
	LinkedinSlug *string   `json:"linkedinSlug,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Skills          []Skill          `json:"skills,omitempty"`
	WorkExperiences []WorkExperience `json:"workExperiences,omitempty"`
}

type UpsertCurriculumInput struct {
	AboutMe      *string
	GithubSlug   *string
	LinkedinSlug *string
}

type CurriculumRepository interface {
	Create(ctx context.Context, cur *Curriculum) error
	GetByID(ctx context.Context, id string) (*Curriculum, error)
	GetByUserID(ctx context.Context, userID string) (*Curriculum, error)
	Update(ctx context.Context, cur *Curriculum) error
	Delete(ctx context.Context, id string) error
}

type CurriculumUsecase interface {
	GetByID(ctx context.Context, id string) (*Curriculum, error)
	GetByUserID(ctx context.Context, userID string, checkUserExists bool) (*Curriculum, error)
	Create(ctx context.Context, userID string, input UpsertCurriculumInput, skipUserCheck bool) (*Curriculum, error)
	Update(ctx context.Context, id string, input UpsertCurriculumInput) (*Curriculum, error)
	CreateOrUpdate(ctx context.Context, userID string, input UpsertCurriculumInput) (*Curriculum, error)
	Delete(ctx context.Context, id string) error
}

// Curriculum error catalog
var (
	ErrCurriculumNotFound = apperror.NotFound("CURRICULUM_NOT_FOUND", "Currículum no encontrado")
	ErrCurriculumExists   = apperror.Conflict("CURRICULUM_ALREADY_EXISTS", "El usuario ya tiene un currículum")
	ErrCurriculumUser     = apperror.NotFound("CURRICULUM_USER_NOT_FOUND", "Usuario no encontrado para el currículum")
)

func CurriculumDatabaseError(err error) *apperror.AppError {
	return apperror.Database("CURRICULUM_DATABASE_ERROR", err)
}
