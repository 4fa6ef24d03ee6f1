package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

type WorkExperience struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	CompanyName     string     `json:"companyName"`
	Role            string     `json:"role"`
	FromYear        time.Time  `json:"fromYear"`
	UntilYear       *time.Time `json:"untilYear,omitempty"`
	RoleDescription *string    `json:"roleDescription,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateWorkExperienceInput struct {
	CompanyName     string
	Role            string
	FromYear        time.Time
	UntilYear       *time.Time
	RoleDescription *string
}

type UpdateWorkExperienceInput struct {
	CompanyName     *string
	Role            *string
	FromYear        *time.Time
	UntilYear       *time.Time
	RoleDescription *string
}

type WorkExperienceRepository interface {
	Create(ctx context.Context, exp *WorkExperience) error
	GetByID(ctx context.Context, id string) (*WorkExperience, error)
	Fetch(ctx context.Context) ([]WorkExperience, error)
	FetchByUser(ctx context.Context, userID string) ([]WorkExperience, error)
	Update(ctx context.Context, exp *WorkExperience) error
	Delete(ctx context.Context, id string) error
}

type WorkExperienceUsecase interface {
	List(ctx context.Context) ([]WorkExperience, error)
	GetByID(ctx context.Context, id string) (*WorkExperience, error)
	ListByUser(ctx context.Context, userID string) ([]WorkExperience, error)
	Create(ctx context.Context, userID string, input CreateWorkExperienceInput) (*WorkExperience, error)
	Update(ctx context.Context, id string, input UpdateWorkExperienceInput) (*WorkExperience, error)
	Delete(ctx context.Context, id string) error
}

// WorkExperience error catalog
var (
	ErrWorkExperienceNotFound = apperror.NotFound("WORK_EXPERIENCE_NOT_FOUND", "Experiencia laboral no encontrada")
	ErrWorkExperienceUser     = apperror.NotFound("WORK_EXPERIENCE_USER_NOT_FOUND", "El usuario no existe")
	ErrWorkExperienceDates    = apperror.BadRequest("WORK_EXPERIENCE_UNTIL_BEFORE_FROM", "La fecha de fin no puede ser anterior a la fecha de inicio")
)

func WorkExperienceDatabaseError(err error) *apperror.AppError {
	return apperror.Database("WORK_EXPERIENCE_DATABASE_ERROR", err)
}
