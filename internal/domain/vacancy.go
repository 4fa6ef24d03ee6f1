package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

// Vacancy status constants
const (
	VacancyStatusOpen   = "open"
	VacancyStatusClosed = "closed"
	VacancyStatusOnHold = "on_hold"
)

// Vacancy work-mode constants
const (
	VacancyModeRemote = "Remoto"
	VacancyModeOnSite = "Presencial"
	VacancyModeHybrid = "Híbrido"
)

func IsValidVacancyStatus(status string) bool {
	switch status {
	case VacancyStatusOpen, VacancyStatusClosed, VacancyStatusOnHold:
		return true
	}
	return false
}

func IsValidVacancyMode(mode string) bool {
	switch mode {
	case VacancyModeRemote, VacancyModeOnSite, VacancyModeHybrid:
		return true
	}
	return false
}

// Vacancy is a published job opening. The slug is globally unique and
// derived from the job title when the caller does not supply one.
type Vacancy struct {
	ID               string    `json:"id"`
	JobTitle         string    `json:"jobTitle"`
	Slug             string    `json:"slug"`
	Mode             string    `json:"mode"`
	YearsExperience  int       `json:"yearsExperience"`
	ShortDescription string    `json:"shortDescription"`
	Description      string    `json:"description"`
	StackRequired    []string  `json:"stackRequired"`
	IsActive         bool      `json:"isActive"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// Loaded on demand
	Applications []Application `json:"applications,omitempty"`
}

// CreateVacancyInput is the create contract. Optional fields keep the
// persisted defaults when nil.
type CreateVacancyInput struct {
	JobTitle         string
	Slug             string
	Mode             string
	YearsExperience  int
	ShortDescription string
	Description      string
	StackRequired    []string
	IsActive         *bool
	Status           string
}

// UpdateVacancyInput is a partial patch; nil fields are left untouched.
type UpdateVacancyInput struct {
	JobTitle         *string
	Slug             *string
	Mode             *string
	YearsExperience  *int
	ShortDescription *string
	Description      *string
	StackRequired    []string
	IsActive         *bool
	Status           *string
}

// VacancyFilter narrows Fetch results.
type VacancyFilter struct {
	Limit    int
	Offset   int
	IsActive *bool
	Status   string
	Mode     string
	Search   string
}

// VacancyListOptions is the usecase-level listing contract.
type VacancyListOptions struct {
	ListOptions
	IsActive *bool
	Status   string
	Mode     string
	Search   string
}

type VacancyRepository interface {
	Create(ctx context.Context, vacancy *Vacancy) error
	GetByID(ctx context.Context, id string) (*Vacancy, error)
	GetBySlug(ctx context.Context, slug string) (*Vacancy, error)
	GetApplications(ctx context.Context, vacancyID string) ([]Application, error)
	Fetch(ctx context.Context, filter VacancyFilter) ([]Vacancy, int64, error)
	Update(ctx context.Context, vacancy *Vacancy) error
	Delete(ctx context.Context, id string) error
}

type VacancyUsecase interface {
	List(ctx context.Context, opts VacancyListOptions) (Page[Vacancy], error)
	GetByID(ctx context.Context, id string, includeApplications bool) (*Vacancy, error)
	GetBySlug(ctx context.Context, slug string, includeApplications bool) (*Vacancy, error)
	Create(ctx context.Context, input CreateVacancyInput) (*Vacancy, error)
	Update(ctx context.Context, id string, input UpdateVacancyInput) (*Vacancy, error)
	ChangeStatus(ctx context.Context, id, status string) (*Vacancy, error)
	Delete(ctx context.Context, id string, physical bool) error
}

// Vacancy error catalog
var (
	ErrVacancyNotFound        = apperror.NotFound("VACANCY_NOT_FOUND", "Vacante no encontrada")
	ErrVacancySlugNotFound    = apperror.NotFound("VACANCY_SLUG_NOT_FOUND", "Vacante con ese slug no encontrada")
	ErrVacancySlugExists      = apperror.Conflict("VACANCY_SLUG_ALREADY_EXISTS", "Ya existe una vacante con ese slug")
	ErrVacancyInvalidStatus   = apperror.BadRequest("VACANCY_INVALID_STATUS", "El estado debe ser open, closed o on_hold")
	ErrVacancyInvalidMode     = apperror.BadRequest("VACANCY_INVALID_MODE", "La modalidad debe ser Remoto, Presencial o Híbrido")
	ErrVacancyInvalidStack    = apperror.BadRequest("VACANCY_INVALID_STACK", "Debe incluir al menos una tecnología requerida")
	ErrVacancyInvalidJobTitle = apperror.BadRequest("VACANCY_INVALID_JOB_TITLE", "El título del puesto no puede estar vacío")
)

func VacancyDatabaseError(err error) *apperror.AppError {
	return apperror.Database("VACANCY_DATABASE_ERROR", err)
}
