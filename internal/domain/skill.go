package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

type Skill struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	SkillName      string    `json:"skillName"`
	URLCertificate *string   `json:"urlCertificate,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateSkillInput struct {
	SkillName      string
	URLCertificate *string
}

type UpdateSkillInput struct {
	SkillName      *string
	URLCertificate *string
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	GetByID(ctx context.Context, id string) (*Skill, error)
	Fetch(ctx context.Context) ([]Skill, error)
	FetchByUser(ctx context.Context, userID string) ([]Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error
}

type SkillUsecase interface {
	List(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	ListByUser(ctx context.Context, userID string) ([]Skill, error)
	Create(ctx context.Context, userID string, input CreateSkillInput) (*Skill, error)
	Update(ctx context.Context, id string, input UpdateSkillInput) (*Skill, error)
	Delete(ctx context.Context, id string) error
}

// Skill error catalog
var (
	ErrSkillNotFound = apperror.NotFound("SKILL_NOT_FOUND", "Habilidad no encontrada")
	ErrSkillUser     = apperror.NotFound("SKILL_USER_NOT_FOUND", "El usuario no existe")
)

func SkillDatabaseError(err error) *apperror.AppError {
	return apperror.Database("SKILL_DATABASE_ERROR", err)
}
