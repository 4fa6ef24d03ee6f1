package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

// User is the profile behind the landing site. Creating one fans out
// into a default CardConfiguration and Curriculum.
type User struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Role           *string   `json:"role,omitempty"`
	Slug           string    `json:"slug"`
	Image          *string   `json:"image,omitempty"`
	IsActive       bool      `json:"isActive"`
	ShowCurriculum bool      `json:"showCurriculum"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Loaded on demand
	CardConfiguration *CardConfiguration `json:"cardConfiguration,omitempty"`
	Curriculum        *Curriculum        `json:"curriculum,omitempty"`
}

// UserLoadOptions toggles relation loading on reads. Child services set
// both to false when they only need an existence check, which is what
// breaks the circular load between users and their child records.
type UserLoadOptions struct {
	LoadCardConfig bool
	LoadCurriculum bool
}

// BootstrapResult reports which default child records were created
// alongside the user. Creation of the user itself never depends on it.
type BootstrapResult struct {
	CardConfigurationCreated bool `json:"cardConfigurationCreated"`
	CurriculumCreated        bool `json:"curriculumCreated"`
}

type CreateUserInput struct {
	FirstName      string
	LastName       string
	Email          string
	Role           *string
	Slug           string
	Image          *string
	IsActive       *bool
	ShowCurriculum *bool
}

type UpdateUserInput struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Role           *string
	Image          *string
	IsActive       *bool
	ShowCurriculum *bool
}

type UserFilter struct {
	Limit    int
	Offset   int
	IsActive *bool
	Search   string
}

type UserListOptions struct {
	ListOptions
	IsActive *bool
	Search   string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetBySlug(ctx context.Context, slug string) (*User, error)
	Fetch(ctx context.Context, filter UserFilter) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
}

type UserUsecase interface {
	List(ctx context.Context, opts UserListOptions) (Page[User], error)
	GetByID(ctx context.Context, id string, opts UserLoadOptions) (*User, error)
	GetBySlug(ctx context.Context, slug string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, input CreateUserInput) (*User, BootstrapResult, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*User, error)
	Delete(ctx context.Context, id string) error
}

// User error catalog
var (
	ErrUserNotFound     = apperror.NotFound("USER_NOT_FOUND", "Usuario no encontrado")
	ErrUserSlugNotFound = apperror.NotFound("USER_SLUG_NOT_FOUND", "Usuario con ese slug no encontrado")
	ErrUserExists       = apperror.Conflict("USER_ALREADY_EXISTS", "Ya existe un usuario con ese email")
	ErrUserInactive     = apperror.Forbidden("USER_INACTIVE", "El usuario está inactivo")
)

func UserDatabaseError(err error) *apperror.AppError {
	return apperror.Database("USER_DATABASE_ERROR", err)
}
