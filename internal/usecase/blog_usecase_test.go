package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kodeksa-backend/internal/domain"
	"kodeksa-backend/internal/usecase"
)

func validBlogInput() domain.CreateBlogInput {
	return domain.CreateBlogInput{
		UserID:      "u1",
		Title:       "Escalando con Go",
		Description: "Notas de arquitectura",
	}
}

func TestBlogSectionValidation(t *testing.T) {
	ctx := context.Background()

	newUC := func() (domain.BlogUsecase, *MockBlogRepo) {
		mockBlogs := new(MockBlogRepo)
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
		return usecase.NewBlogUsecase(mockBlogs, mockUsers), mockBlogs
	}

	cases := []struct {
		name    string
		section domain.SectionInput
		valid   bool
	}{
		{"paragraph with content", domain.SectionInput{Type: domain.SectionParagraph, Content: ptr("hola")}, true},
		{"paragraph with blank content", domain.SectionInput{Type: domain.SectionParagraph, Content: ptr("   ")}, false},
		{"heading without content", domain.SectionInput{Type: domain.SectionHeading}, false},
		{"subheading with content", domain.SectionInput{Type: domain.SectionSubheading, Content: ptr("intro")}, true},
		{"image with src and alt", domain.SectionInput{Type: domain.SectionImage, Src: ptr("/img.png"), Alt: ptr("diagrama")}, true},
		{"image without alt", domain.SectionInput{Type: domain.SectionImage, Src: ptr("/img.png")}, false},
		{"ordered list with items", domain.SectionInput{Type: domain.SectionList, Style: ptr(domain.ListStyleOrdered), Items: []string{"uno"}}, true},
		{"list with unknown style", domain.SectionInput{Type: domain.SectionList, Style: ptr("bulleted"), Items: []string{"uno"}}, false},
		{"list without items", domain.SectionInput{Type: domain.SectionList, Style: ptr(domain.ListStyleUnordered)}, false},
		{"unknown type", domain.SectionInput{Type: "quote", Content: ptr("x")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockBlogs := newUC()
			if tc.valid {
				mockBlogs.On("GetBySlug", ctx, "escalando-con-go").Return(nil, domain.ErrNotFound)
				mockBlogs.On("Create", ctx, mock.AnythingOfType("*domain.Blog")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Blog).ID = "b1"
				})
				mockBlogs.On("GetByID", ctx, "b1").Return(&domain.Blog{ID: "b1"}, nil)
				mockBlogs.On("GetSectionsByBlog", ctx, "b1").Return([]domain.BlogSection{}, nil)
			}

			input := validBlogInput()
			input.Sections = []domain.SectionInput{tc.section}
			_, err := uc.Create(ctx, input)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrBlogSectionInvalid)
			}
		})
	}
}

func TestBlogCreateSlugResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("Explicit slug collision is an error", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
		mockBlogs.On("GetBySlug", ctx, "mi-post").Return(&domain.Blog{ID: "other", Slug: "mi-post"}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, mockUsers)
		input := validBlogInput()
		input.Slug = ptr("mi post")
		_, err := uc.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrBlogSlugExists)
	})

	t.Run("Title-derived slug collision is also an error", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
		mockBlogs.On("GetBySlug", ctx, "escalando-con-go").Return(&domain.Blog{ID: "other"}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, mockUsers)
		_, err := uc.Create(ctx, validBlogInput())
		assert.ErrorIs(t, err, domain.ErrBlogSlugExists)
		mockBlogs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Free derived slug is used as-is", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1"}, nil)
		mockBlogs.On("GetBySlug", ctx, "escalando-con-go").Return(nil, domain.ErrNotFound)
		mockBlogs.On("Create", ctx, mock.AnythingOfType("*domain.Blog")).Return(nil).Run(func(args mock.Arguments) {
			blog := args.Get(1).(*domain.Blog)
			blog.ID = "b1"
			assert.Equal(t, "escalando-con-go", blog.Slug)
		})
		mockBlogs.On("GetByID", ctx, "b1").Return(&domain.Blog{ID: "b1"}, nil)
		mockBlogs.On("GetSectionsByBlog", ctx, "b1").Return([]domain.BlogSection{}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, mockUsers)
		_, err := uc.Create(ctx, validBlogInput())
		assert.NoError(t, err)
		mockBlogs.AssertExpectations(t)
	})

	t.Run("Missing author fails", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByID", ctx, "u1").Return(nil, domain.ErrNotFound)

		uc := usecase.NewBlogUsecase(mockBlogs, mockUsers)
		_, err := uc.Create(ctx, validBlogInput())
		assert.ErrorIs(t, err, domain.ErrBlogUserNotFound)
	})
}

func TestBlogUpdateSlugIsSymmetric(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.Blog {
		return &domain.Blog{ID: "b1", UserID: "u1", Title: "Escalando con Go", Slug: "escalando-con-go", Description: "x", IsActive: true}
	}

	t.Run("Title-derived collision errors instead of suffixing", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockBlogs.On("GetByID", ctx, "b1").Return(existing(), nil)
		mockBlogs.On("GetBySlug", ctx, "nuevo-titulo").Return(&domain.Blog{ID: "b2", Slug: "nuevo-titulo"}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, new(MockUserRepo))
		_, err := uc.Update(ctx, "b1", domain.UpdateBlogInput{Title: ptr("Nuevo Título")})
		assert.ErrorIs(t, err, domain.ErrBlogSlugExists)
	})

	t.Run("Non-nil sections replace the set wholesale", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockBlogs.On("GetByID", ctx, "b1").Return(existing(), nil)
		mockBlogs.On("Update", ctx, mock.AnythingOfType("*domain.Blog")).Return(nil)
		mockBlogs.On("DeleteSectionsByBlog", ctx, "b1").Return(nil)
		mockBlogs.On("CreateSection", ctx, mock.AnythingOfType("*domain.BlogSection")).Return(nil)
		mockBlogs.On("GetSectionsByBlog", ctx, "b1").Return([]domain.BlogSection{}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, new(MockUserRepo))
		_, err := uc.Update(ctx, "b1", domain.UpdateBlogInput{
			Sections: []domain.SectionInput{
				{Type: domain.SectionParagraph, Content: ptr("nuevo cuerpo")},
			},
		})
		assert.NoError(t, err)
		mockBlogs.AssertCalled(t, "DeleteSectionsByBlog", ctx, "b1")
	})

	t.Run("Nil sections leave existing ones alone", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockBlogs.On("GetByID", ctx, "b1").Return(existing(), nil)
		mockBlogs.On("Update", ctx, mock.AnythingOfType("*domain.Blog")).Return(nil)
		mockBlogs.On("GetSectionsByBlog", ctx, "b1").Return([]domain.BlogSection{}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, new(MockUserRepo))
		_, err := uc.Update(ctx, "b1", domain.UpdateBlogInput{Description: ptr("actualizada")})
		assert.NoError(t, err)
		mockBlogs.AssertNotCalled(t, "DeleteSectionsByBlog", mock.Anything, mock.Anything)
	})
}

func TestBlogSections(t *testing.T) {
	ctx := context.Background()

	t.Run("AddSection appends at the end", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockBlogs.On("GetByID", ctx, "b1").Return(&domain.Blog{ID: "b1"}, nil)
		mockBlogs.On("GetSectionsByBlog", ctx, "b1").Return([]domain.BlogSection{{ID: "s1"}, {ID: "s2"}}, nil)
		mockBlogs.On("CreateSection", ctx, mock.AnythingOfType("*domain.BlogSection")).Return(nil)

		uc := usecase.NewBlogUsecase(mockBlogs, new(MockUserRepo))
		section, err := uc.AddSection(ctx, "b1", domain.SectionInput{
			Type: domain.SectionParagraph, Content: ptr("cierre"),
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, section.Order)
	})

	t.Run("Sections of another blog are treated as missing", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockBlogs.On("GetSection", ctx, "s9").Return(&domain.BlogSection{ID: "s9", BlogID: "b2"}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, new(MockUserRepo))
		err := uc.DeleteSection(ctx, "b1", "s9")
		assert.ErrorIs(t, err, domain.ErrBlogSectionNotFound)
	})

	t.Run("Reorder rejects a partial id set", func(t *testing.T) {
		mockBlogs := new(MockBlogRepo)
		mockBlogs.On("GetByID", ctx, "b1").Return(&domain.Blog{ID: "b1"}, nil)
		mockBlogs.On("GetSectionsByBlog", ctx, "b1").Return([]domain.BlogSection{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}, nil)
		mockBlogs.On("GetSectionsByBlogAndIDs", ctx, "b1", []string{"s2", "s1"}).
			Return([]domain.BlogSection{{ID: "s1"}, {ID: "s2"}}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, new(MockUserRepo))
		_, err := uc.ReorderSections(ctx, "b1", []string{"s2", "s1"})
		assert.ErrorIs(t, err, domain.ErrBlogSectionNotFound)
		mockBlogs.AssertNotCalled(t, "UpdateSectionOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reorder assigns order by position", func(t *testing.T) {
		sections := []domain.BlogSection{{ID: "s1", BlogID: "b1"}, {ID: "s2", BlogID: "b1"}}

		mockBlogs := new(MockBlogRepo)
		mockBlogs.On("GetByID", ctx, "b1").Return(&domain.Blog{ID: "b1"}, nil)
		mockBlogs.On("GetSectionsByBlog", ctx, "b1").Return(sections, nil).Once()
		mockBlogs.On("GetSectionsByBlogAndIDs", ctx, "b1", []string{"s2", "s1"}).Return(sections, nil)
		mockBlogs.On("UpdateSectionOrder", ctx, "s2", 0).Return(nil)
		mockBlogs.On("UpdateSectionOrder", ctx, "s1", 1).Return(nil)
		mockBlogs.On("GetSectionsByBlog", ctx, "b1").Return([]domain.BlogSection{
			{ID: "s2", BlogID: "b1", Order: 0}, {ID: "s1", BlogID: "b1", Order: 1},
		}, nil)

		uc := usecase.NewBlogUsecase(mockBlogs, new(MockUserRepo))
		reordered, err := uc.ReorderSections(ctx, "b1", []string{"s2", "s1"})
		assert.NoError(t, err)
		if assert.Len(t, reordered, 2) {
			assert.Equal(t, "s2", reordered[0].ID)
		}
		mockBlogs.AssertExpectations(t)
	})
}
