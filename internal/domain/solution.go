package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

// Solution is a service offering shown on the landing page, with an
// ordered list of feature bullet points.
type Solution struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Features []Feature `json:"features,omitempty"`
}

type Feature struct {
	ID                 string    `json:"id"`
	SolutionID         string    `json:"solutionId"`
	FeatureDescription string    `json:"featureDescription"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type CreateSolutionInput struct {
	Title       string
	Icon        string
	Description string
	IsActive    *bool
	Order       *int
	Features    []string
}

type UpdateSolutionInput struct {
	Title       *string
	Icon        *string
	Description *string
	IsActive    *bool
	Order       *int
}

type CreateFeatureInput struct {
	FeatureDescription string
	IsActive           *bool
}

type UpdateFeatureInput struct {
	FeatureDescription *string
	IsActive           *bool
}

type SolutionFilter struct {
	Limit    int
	Offset   int
	IsActive *bool
}

type SolutionListOptions struct {
	ListOptions
	IsActive        *bool
	IncludeFeatures bool
}

type SolutionRepository interface {
	Create(ctx context.Context, solution *Solution) error
	GetByID(ctx context.Context, id string) (*Solution, error)
	Fetch(ctx context.Context, filter SolutionFilter) ([]Solution, int64, error)
	Update(ctx context.Context, solution *Solution) error
	Delete(ctx context.Context, id string) error

	CreateFeature(ctx context.Context, feature *Feature) error
	GetFeature(ctx context.Context, id string) (*Feature, error)
	FetchFeatures(ctx context.Context, solutionID string) ([]Feature, error)
	UpdateFeature(ctx context.Context, feature *Feature) error
	DeleteFeature(ctx context.Context, id string) error
}

type SolutionUsecase interface {
	List(ctx context.Context, opts SolutionListOptions) (Page[Solution], error)
	GetByID(ctx context.Context, id string) (*Solution, error)
	Create(ctx context.Context, input CreateSolutionInput) (*Solution, error)
	Update(ctx context.Context, id string, input UpdateSolutionInput) (*Solution, error)
	Delete(ctx context.Context, id string, physical bool) error

	AddFeature(ctx context.Context, solutionID string, input CreateFeatureInput) (*Feature, error)
	ListFeatures(ctx context.Context, solutionID string) ([]Feature, error)
	UpdateFeature(ctx context.Context, solutionID, featureID string, input UpdateFeatureInput) (*Feature, error)
	DeleteFeature(ctx context.Context, solutionID, featureID string) error
}

// Solution error catalog
var (
	ErrSolutionNotFound = apperror.NotFound("SOLUTION_NOT_FOUND", "Solución no encontrada")
	ErrFeatureNotFound  = apperror.NotFound("SOLUTION_FEATURE_NOT_FOUND", "Característica de solución no encontrada")
)

func SolutionDatabaseError(err error) *apperror.AppError {
	return apperror.Database("SOLUTION_DATABASE_ERROR", err)
}
