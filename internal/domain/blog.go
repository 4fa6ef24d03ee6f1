package domain

import (
	"context"
	"time"

	"kodeksa-backend/pkg/apperror"
)

// Blog section types. Each type requires a different subset of the
// section fields, validated in the usecase before writes.
const (
	SectionParagraph  = "paragraph"
	SectionImage      = "image"
	SectionHeading    = "heading"
	SectionSubheading = "subheading"
	SectionList       = "list"
)

const (
	ListStyleOrdered   = "ordered"
	ListStyleUnordered = "unordered"
)

func IsValidSectionType(t string) bool {
	switch t {
	case SectionParagraph, SectionImage, SectionHeading, SectionSubheading, SectionList:
		return true
	}
	return false
}

func IsValidListStyle(s string) bool {
	return s == ListStyleOrdered || s == ListStyleUnordered
}

// BlogAuthor is the denormalized author snapshot embedded in list and
// detail responses.
type BlogAuthor struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
	Role   *string `json:"role,omitempty"`
}

type Blog struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CoverImage  *string   `json:"coverImage,omitempty"`
	Categories  []string  `json:"categories"`
	ReadingTime *int      `json:"readingTime,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Author   *BlogAuthor   `json:"author,omitempty"`
	Sections []BlogSection `json:"sections,omitempty"`
}

type BlogSection struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blogId"`
	Type      string    `json:"type"`
	Order     int       `json:"order"`
	Content   *string   `json:"content,omitempty"`
	Src       *string   `json:"src,omitempty"`
	Alt       *string   `json:"alt,omitempty"`
	Style     *string   `json:"style,omitempty"`
	Items     []string  `json:"items,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateBlogInput struct {
	UserID      string
	Title       string
	Slug        *string
	Description string
	CoverImage  *string
	Categories  []string
	ReadingTime *int
	IsActive    *bool
	Sections    []SectionInput
}

type UpdateBlogInput struct {
	Title       *string
	Slug        *string
	Description *string
	CoverImage  *string
	Categories  []string
	ReadingTime *int
	IsActive    *bool

	// Non-nil Sections replace the blog's sections wholesale.
	Sections []SectionInput
}

type SectionInput struct {
	Type    string
	Content *string
	Src     *string
	Alt     *string
	Style   *string
	Items   []string
}

type BlogFilter struct {
	Limit    int
	Offset   int
	IsActive *bool
	UserID   string
	Category string
	Search   string
}

type BlogListOptions struct {
	ListOptions
	IsActive        *bool
	UserID          string
	Category        string
	Search          string
	IncludeSections bool
}

type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	GetByID(ctx context.Context, id string) (*Blog, error)
	GetBySlug(ctx context.Context, slug string) (*Blog, error)
	Fetch(ctx context.Context, filter BlogFilter) ([]Blog, int64, error)
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id string) error

	CreateSection(ctx context.Context, section *BlogSection) error
	GetSection(ctx context.Context, id string) (*BlogSection, error)
	GetSectionsByBlog(ctx context.Context, blogID string) ([]BlogSection, error)
	GetSectionsByBlogAndIDs(ctx context.Context, blogID string, ids []string) ([]BlogSection, error)
	UpdateSection(ctx context.Context, section *BlogSection) error
	UpdateSectionOrder(ctx context.Context, sectionID string, order int) error
	DeleteSection(ctx context.Context, id string) error
	DeleteSectionsByBlog(ctx context.Context, blogID string) error
}

type BlogUsecase interface {
	List(ctx context.Context, opts BlogListOptions) (Page[Blog], error)
	GetByID(ctx context.Context, id string) (*Blog, error)
	GetBySlug(ctx context.Context, slug string) (*Blog, error)
	ListByUser(ctx context.Context, userID string) ([]Blog, error)
	Create(ctx context.Context, input CreateBlogInput) (*Blog, error)
	Update(ctx context.Context, id string, input UpdateBlogInput) (*Blog, error)
	Delete(ctx context.Context, id string, physical bool) error

	AddSection(ctx context.Context, blogID string, input SectionInput) (*BlogSection, error)
	UpdateSection(ctx context.Context, blogID, sectionID string, input SectionInput) (*BlogSection, error)
	ReorderSections(ctx context.Context, blogID string, sectionIDs []string) ([]BlogSection, error)
	DeleteSection(ctx context.Context, blogID, sectionID string) error
}

// Blog error catalog
var (
	ErrBlogNotFound        = apperror.NotFound("BLOG_NOT_FOUND", "Blog no encontrado")
	ErrBlogSlugNotFound    = apperror.NotFound("BLOG_SLUG_NOT_FOUND", "Blog con ese slug no encontrado")
	ErrBlogSlugExists      = apperror.Conflict("BLOG_SLUG_ALREADY_EXISTS", "Ya existe un blog con ese slug")
	ErrBlogUserNotFound    = apperror.NotFound("BLOG_USER_NOT_FOUND", "Usuario autor del blog no encontrado")
	ErrBlogMissingFields   = apperror.BadRequest("BLOG_MISSING_REQUIRED_FIELDS", "Faltan campos requeridos en el blog")
	ErrBlogSectionNotFound = apperror.NotFound("BLOG_SECTION_NOT_FOUND", "Sección de blog no encontrada")
	ErrBlogSectionInvalid  = apperror.BadRequest("BLOG_SECTION_INVALID", "La sección del blog no es válida para su tipo")
)

func BlogDatabaseError(err error) *apperror.AppError {
	return apperror.Database("BLOG_DATABASE_ERROR", err)
}
