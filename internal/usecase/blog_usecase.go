package usecase

import (
	"context"
	"errors"
	"strings"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/pkg/slug"
)

type blogUsecase struct {
	blogRepo domain.BlogRepository
	userRepo domain.UserRepository
}

// NewBlogUsecase creates a new blog usecase
func NewBlogUsecase(blogRepo domain.BlogRepository, userRepo domain.UserRepository) domain.BlogUsecase {
	return &blogUsecase{blogRepo: blogRepo, userRepo: userRepo}
}

// validateSection enforces the per-type field contract: textual types
// carry content, images carry src and alt, lists carry a style and at
// least one item.
func validateSection(input domain.SectionInput) error {
	if !domain.IsValidSectionType(input.Type) {
		return domain.ErrBlogSectionInvalid
	}

	switch input.Type {
	case domain.SectionParagraph, domain.SectionHeading, domain.SectionSubheading:
		if input.Content == nil || strings.TrimSpace(*input.Content) == "" {
			return domain.ErrBlogSectionInvalid
		}
	case domain.SectionImage:
		if input.Src == nil || *input.Src == "" || input.Alt == nil || *input.Alt == "" {
			return domain.ErrBlogSectionInvalid
		}
	case domain.SectionList:
		if input.Style == nil || !domain.IsValidListStyle(*input.Style) {
			return domain.ErrBlogSectionInvalid
		}
		if len(input.Items) == 0 {
			return domain.ErrBlogSectionInvalid
		}
	}
	return nil
}

func sectionFromInput(blogID string, order int, input domain.SectionInput) domain.BlogSection {
	return domain.BlogSection{
		BlogID:  blogID,
		Type:    input.Type,
		Order:   order,
		Content: input.Content,
		Src:     input.Src,
		Alt:     input.Alt,
		Style:   input.Style,
		Items:   input.Items,
	}
}

func (uc *blogUsecase) List(ctx context.Context, opts domain.BlogListOptions) (domain.Page[domain.Blog], error) {
	opts.Normalize()

	filter := domain.BlogFilter{
		Limit:    opts.Limit,
		Offset:   opts.Offset(),
		IsActive: opts.IsActive,
		UserID:   opts.UserID,
		Category: opts.Category,
		Search:   opts.Search,
	}

	blogs, total, err := uc.blogRepo.Fetch(ctx, filter)
	if err != nil {
		return domain.Page[domain.Blog]{}, classify(err, domain.BlogDatabaseError)
	}

	if opts.IncludeSections {
		for i := range blogs {
			sections, err := uc.blogRepo.GetSectionsByBlog(ctx, blogs[i].ID)
			if err != nil {
				return domain.Page[domain.Blog]{}, classify(err, domain.BlogDatabaseError)
			}
			blogs[i].Sections = sections
		}
	}
	return domain.NewPage(blogs, opts.Page, opts.Limit, total), nil
}

func (uc *blogUsecase) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	blog, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, classify(err, domain.BlogDatabaseError)
	}
	return uc.withSections(ctx, blog)
}

func (uc *blogUsecase) GetBySlug(ctx context.Context, s string) (*domain.Blog, error) {
	blog, err := uc.blogRepo.GetBySlug(ctx, s)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlogSlugNotFound
		}
		return nil, classify(err, domain.BlogDatabaseError)
	}
	return uc.withSections(ctx, blog)
}

func (uc *blogUsecase) withSections(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	sections, err := uc.blogRepo.GetSectionsByBlog(ctx, blog.ID)
	if err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}
	blog.Sections = sections
	return blog, nil
}

func (uc *blogUsecase) ListByUser(ctx context.Context, userID string) ([]domain.Blog, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlogUserNotFound
		}
		return nil, classify(err, domain.BlogDatabaseError)
	}

	blogs, _, err := uc.blogRepo.Fetch(ctx, domain.BlogFilter{
		Limit:  1000,
		UserID: userID,
	})
	if err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}
	return blogs, nil
}

func (uc *blogUsecase) Create(ctx context.Context, input domain.CreateBlogInput) (*domain.Blog, error) {
	// 1. Required fields
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.ErrBlogMissingFields
	}

	// 2. Author must exist
	if _, err := uc.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlogUserNotFound
		}
		return nil, classify(err, domain.BlogDatabaseError)
	}

	// 3. Validate sections before touching storage
	for _, s := range input.Sections {
		if err := validateSection(s); err != nil {
			return nil, err
		}
	}

	// 4. Resolve the slug. Collisions are a conflict at create time no
	// matter where the slug came from.
	source := input.Title
	if input.Slug != nil && *input.Slug != "" {
		source = *input.Slug
	}
	resolved := slug.Generate(source)
	if _, err := uc.blogRepo.GetBySlug(ctx, resolved); err == nil {
		return nil, domain.ErrBlogSlugExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, classify(err, domain.BlogDatabaseError)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	categories := input.Categories
	if categories == nil {
		categories = []string{}
	}

	blog := &domain.Blog{
		UserID:      input.UserID,
		Title:       input.Title,
		Slug:        resolved,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		Categories:  categories,
		ReadingTime: input.ReadingTime,
		IsActive:    isActive,
	}
	for i, s := range input.Sections {
		blog.Sections = append(blog.Sections, sectionFromInput("", i, s))
	}

	if err := uc.blogRepo.Create(ctx, blog); err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}
	return uc.GetByID(ctx, blog.ID)
}

func (uc *blogUsecase) Update(ctx context.Context, id string, input domain.UpdateBlogInput) (*domain.Blog, error) {
	blog, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, classify(err, domain.BlogDatabaseError)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domain.ErrBlogMissingFields
		}
		blog.Title = *input.Title
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, domain.ErrBlogMissingFields
		}
		blog.Description = *input.Description
	}
	if input.CoverImage != nil {
		blog.CoverImage = input.CoverImage
	}
	if input.Categories != nil {
		blog.Categories = input.Categories
	}
	if input.ReadingTime != nil {
		blog.ReadingTime = input.ReadingTime
	}
	if input.IsActive != nil {
		blog.IsActive = *input.IsActive
	}

	// Slug changes are symmetric on update: explicit and title-derived
	// collisions both error.
	var resolved string
	switch {
	case input.Slug != nil && *input.Slug != "":
		resolved = slug.Generate(*input.Slug)
	case input.Title != nil:
		resolved = slug.Generate(blog.Title)
	}
	if resolved != "" && resolved != blog.Slug {
		if other, err := uc.blogRepo.GetBySlug(ctx, resolved); err == nil && other.ID != blog.ID {
			return nil, domain.ErrBlogSlugExists
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, classify(err, domain.BlogDatabaseError)
		}
		blog.Slug = resolved
	}

	// Non-nil sections replace the existing set wholesale.
	if input.Sections != nil {
		for _, s := range input.Sections {
			if err := validateSection(s); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.blogRepo.Update(ctx, blog); err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}

	if input.Sections != nil {
		if err := uc.blogRepo.DeleteSectionsByBlog(ctx, blog.ID); err != nil {
			return nil, classify(err, domain.BlogDatabaseError)
		}
		for i, s := range input.Sections {
			section := sectionFromInput(blog.ID, i, s)
			if err := uc.blogRepo.CreateSection(ctx, &section); err != nil {
				return nil, classify(err, domain.BlogDatabaseError)
			}
		}
	}

	return uc.GetByID(ctx, blog.ID)
}

func (uc *blogUsecase) Delete(ctx context.Context, id string, physical bool) error {
	if physical {
		if err := uc.blogRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrBlogNotFound
			}
			return classify(err, domain.BlogDatabaseError)
		}
		return nil
	}

	blog, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrBlogNotFound
		}
		return classify(err, domain.BlogDatabaseError)
	}

	blog.IsActive = false
	if err := uc.blogRepo.Update(ctx, blog); err != nil {
		return classify(err, domain.BlogDatabaseError)
	}
	return nil
}

func (uc *blogUsecase) AddSection(ctx context.Context, blogID string, input domain.SectionInput) (*domain.BlogSection, error) {
	if err := validateSection(input); err != nil {
		return nil, err
	}

	if _, err := uc.blogRepo.GetByID(ctx, blogID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, classify(err, domain.BlogDatabaseError)
	}

	existing, err := uc.blogRepo.GetSectionsByBlog(ctx, blogID)
	if err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}

	section := sectionFromInput(blogID, len(existing), input)
	if err := uc.blogRepo.CreateSection(ctx, &section); err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}
	return &section, nil
}

func (uc *blogUsecase) getOwnedSection(ctx context.Context, blogID, sectionID string) (*domain.BlogSection, error) {
	section, err := uc.blogRepo.GetSection(ctx, sectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlogSectionNotFound
		}
		return nil, classify(err, domain.BlogDatabaseError)
	}
	if section.BlogID != blogID {
		return nil, domain.ErrBlogSectionNotFound
	}
	return section, nil
}

func (uc *blogUsecase) UpdateSection(ctx context.Context, blogID, sectionID string, input domain.SectionInput) (*domain.BlogSection, error) {
	section, err := uc.getOwnedSection(ctx, blogID, sectionID)
	if err != nil {
		return nil, err
	}

	if input.Type != "" {
		section.Type = input.Type
	}
	if input.Content != nil {
		section.Content = input.Content
	}
	if input.Src != nil {
		section.Src = input.Src
	}
	if input.Alt != nil {
		section.Alt = input.Alt
	}
	if input.Style != nil {
		section.Style = input.Style
	}
	if input.Items != nil {
		section.Items = input.Items
	}

	// The merged section must satisfy its (possibly new) type.
	merged := domain.SectionInput{
		Type:    section.Type,
		Content: section.Content,
		Src:     section.Src,
		Alt:     section.Alt,
		Style:   section.Style,
		Items:   section.Items,
	}
	if err := validateSection(merged); err != nil {
		return nil, err
	}

	if err := uc.blogRepo.UpdateSection(ctx, section); err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}
	return section, nil
}

// ReorderSections assigns order = position for the given id sequence.
// The id set must match the blog's sections exactly.
func (uc *blogUsecase) ReorderSections(ctx context.Context, blogID string, sectionIDs []string) ([]domain.BlogSection, error) {
	if _, err := uc.blogRepo.GetByID(ctx, blogID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, classify(err, domain.BlogDatabaseError)
	}

	existing, err := uc.blogRepo.GetSectionsByBlog(ctx, blogID)
	if err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}
	matched, err := uc.blogRepo.GetSectionsByBlogAndIDs(ctx, blogID, sectionIDs)
	if err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}
	if len(matched) != len(sectionIDs) || len(sectionIDs) != len(existing) {
		return nil, domain.ErrBlogSectionNotFound
	}

	for i, id := range sectionIDs {
		if err := uc.blogRepo.UpdateSectionOrder(ctx, id, i); err != nil {
			return nil, classify(err, domain.BlogDatabaseError)
		}
	}

	sections, err := uc.blogRepo.GetSectionsByBlog(ctx, blogID)
	if err != nil {
		return nil, classify(err, domain.BlogDatabaseError)
	}
	return sections, nil
}

func (uc *blogUsecase) DeleteSection(ctx context.Context, blogID, sectionID string) error {
	if _, err := uc.getOwnedSection(ctx, blogID, sectionID); err != nil {
		return err
	}

	if err := uc.blogRepo.DeleteSection(ctx, sectionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrBlogSectionNotFound
		}
		return classify(err, domain.BlogDatabaseError)
	}
	return nil
}
