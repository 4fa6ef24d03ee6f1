package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

// Application status constants. The intended flow is
// pending → in_review → accepted / rejected, but transitions are not
// constrained beyond enum membership.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusInReview = "in_review"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

func IsValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusInReview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a candidacy for a vacancy. At most one exists per
// (vacancyId, email) pair.
type Application struct {
	ID                    string    `json:"id"`
	VacancyID             string    `json:"vacancyId"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	ApplicationMotivation *string   `json:"applicationMotivation,omitempty"`
	CvURL                 *string   `json:"cvUrl,omitempty"`
	Status                string    `json:"status"`
	IsActive              bool      `json:"isActive"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`

	// Joined data for detail/list responses
	Vacancy *Vacancy `json:"vacancy,omitempty"`
}

type CreateApplicationInput struct {
	VacancyID             string
	Name                  string
	Email                 string
	Phone                 string
	ApplicationMotivation *string
	CvURL                 *string
	IsActive              *bool
	// Status from the caller is deliberately ignored; every new
	// application starts at pending.
}

type UpdateApplicationInput struct {
	VacancyID             *string
	Name                  *string
	Email                 *string
	Phone                 *string
	ApplicationMotivation *string
	CvURL                 *string
	IsActive              *bool
}

// CVFile is the uploaded résumé attached to CreateWithCV.
type CVFile struct {
	Filename string
	Data     []byte
}

type ApplicationFilter struct {
	Limit     int
	Offset    int
	IsActive  *bool
	Status    string
	VacancyID string
	Search    string
}

type ApplicationListOptions struct {
	ListOptions
	IsActive *bool
	Status   string
	Search   string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByVacancyAndEmail(ctx context.Context, vacancyID, email string) (*Application, error)
	Fetch(ctx context.Context, filter ApplicationFilter) ([]Application, int64, error)
	Update(ctx context.Context, app *Application) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type ApplicationUsecase interface {
	List(ctx context.Context, opts ApplicationListOptions, vacancyID string) (Page[Application], error)
	ListByVacancy(ctx context.Context, vacancyID string, opts ApplicationListOptions) (Page[Application], error)
	GetByID(ctx context.Context, id string) (*Application, error)
	Create(ctx context.Context, input CreateApplicationInput) (*Application, error)
	CreateWithCV(ctx context.Context, input CreateApplicationInput, cv CVFile) (*Application, error)
	Update(ctx context.Context, id string, input UpdateApplicationInput) (*Application, error)
	UpdateStatus(ctx context.Context, id, status string) (*Application, error)
	Delete(ctx context.Context, id string, physical bool) error
}

// Application error catalog
var (
	ErrApplicationNotFound      = apperror.NotFound("APPLICATION_NOT_FOUND", "Aplicación no encontrada")
	ErrApplicationVacancyMissed = apperror.NotFound("APPLICATION_VACANCY_NOT_FOUND", "La vacante no existe")
	ErrApplicationVacancyClosed = apperror.Forbidden("APPLICATION_VACANCY_CLOSED", "La vacante está cerrada y no acepta nuevas aplicaciones")
	ErrVacancyInactive          = apperror.Forbidden("APPLICATION_VACANCY_INACTIVE", "La vacante no está activa")
	ErrAlreadyApplied           = apperror.Conflict("APPLICATION_ALREADY_APPLIED", "Ya has aplicado a esta vacante con este email")
	ErrApplicationExists        = apperror.Conflict("APPLICATION_ALREADY_EXISTS", "Ya existe una aplicación con este email para esta vacante")
	ErrApplicationInvalidStatus = apperror.BadRequest("APPLICATION_INVALID_STATUS", "El estado debe ser pending, in_review, accepted o rejected")
	ErrApplicationInvalidEmail  = apperror.BadRequest("APPLICATION_INVALID_EMAIL", "El email debe tener un formato válido")
	ErrCVUpload                 = apperror.Internal("APPLICATION_CV_UPLOAD_ERROR", "Error al subir el CV. Por favor, inténtalo de nuevo", nil)
)

func ApplicationDatabaseError(err error) *apperror.AppError {
	return apperror.Database("APPLICATION_DATABASE_ERROR", err)
}
