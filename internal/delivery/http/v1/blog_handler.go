package v1

import (
	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

func NewBlogHandler(group *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	blogs := group.Group("/blogs")
	{
		blogs.GET("", handler.List)
		blogs.GET("/:blogId", handler.GetByID)
		blogs.GET("/slug/:slug", handler.GetBySlug)
		blogs.GET("/user/:userId", handler.ListByUser)
		blogs.POST("", handler.Create)
		blogs.PUT("/:blogId", handler.Update)
		blogs.DELETE("/:blogId", handler.Delete)

		blogs.POST("/:blogId/sections", handler.AddSection)
		blogs.PATCH("/:blogId/sections/reorder", handler.ReorderSections)
		blogs.PUT("/:blogId/sections/:sectionId", handler.UpdateSection)
		blogs.DELETE("/:blogId/sections/:sectionId", handler.DeleteSection)
	}
}

type SectionRequest struct {
	Type    string   `json:"type" binding:"required"`
	Content *string  `json:"content"`
	Src     *string  `json:"src"`
	Alt     *string  `json:"alt"`
	Style   *string  `json:"style"`
	Items   []string `json:"items"`
}

func (r SectionRequest) toInput() domain.SectionInput {
	return domain.SectionInput{
		Type:    r.Type,
		Content: r.Content,
		Src:     r.Src,
		Alt:     r.Alt,
		Style:   r.Style,
		Items:   r.Items,
	}
}

type CreateBlogRequest struct {
	UserID      string           `json:"userId" binding:"required"`
	Title       string           `json:"title" binding:"required"`
	Slug        *string          `json:"slug"`
	Description string           `json:"description" binding:"required"`
	CoverImage  *string          `json:"coverImage"`
	Categories  []string         `json:"categories"`
	ReadingTime *int             `json:"readingTime"`
	IsActive    *bool            `json:"isActive"`
	Sections    []SectionRequest `json:"sections"`
}

type UpdateBlogRequest struct {
	Title       *string          `json:"title"`
	Slug        *string          `json:"slug"`
	Description *string          `json:"description"`
	CoverImage  *string          `json:"coverImage"`
	Categories  []string         `json:"categories"`
	ReadingTime *int             `json:"readingTime"`
	IsActive    *bool            `json:"isActive"`
	Sections    []SectionRequest `json:"sections"`
}

type ReorderSectionsRequest struct {
	SectionIDs []string `json:"sectionIds" binding:"required,min=1"`
}

func sectionsToInput(sections []SectionRequest) []domain.SectionInput {
	if sections == nil {
		return nil
	}
	inputs := make([]domain.SectionInput, len(sections))
	for i, s := range sections {
		inputs[i] = s.toInput()
	}
	return inputs
}

// List godoc
// @Summary      List blogs with author info
// @Tags         blogs
// @Produce      json
// @Param        page             query  int     false  "Page number"
// @Param        limit            query  int     false  "Items per page"
// @Param        isActive         query  bool    false  "Filter by active flag"
// @Param        userId           query  string  false  "Filter by author"
// @Param        category         query  string  false  "Filter by category"
// @Param        search           query  string  false  "Free-text search"
// @Param        includeSections  query  bool    false  "Eager-load sections"
// @Success      200  {object}  domain.Page[domain.Blog]
// @Router       /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	include := queryBool(c, "includeSections")
	opts := domain.BlogListOptions{
		ListOptions:     listOptions(c),
		IsActive:        queryBool(c, "isActive"),
		UserID:          c.Query("userId"),
		Category:        c.Query("category"),
		Search:          c.Query("search"),
		IncludeSections: include != nil && *include,
	}

	page, err := h.blogUC.List(c.Request.Context(), opts)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page)
}

// GetByID godoc
// @Summary      Get a blog by id with ordered sections
// @Tags         blogs
// @Produce      json
// @Param        blogId  path  string  true  "Blog id"
// @Success      200  {object}  domain.Blog
// @Failure      404  {object}  response.ErrorBody
// @Router       /blogs/{blogId} [get]
func (h *BlogHandler) GetByID(c *gin.Context) {
	blog, err := h.blogUC.GetByID(c.Request.Context(), c.Param("blogId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, blog)
}

// GetBySlug godoc
// @Summary      Get a blog by slug with ordered sections
// @Tags         blogs
// @Produce      json
// @Param        slug  path  string  true  "Blog slug"
// @Success      200  {object}  domain.Blog
// @Failure      404  {object}  response.ErrorBody
// @Router       /blogs/slug/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.blogUC.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, blog)
}

// ListByUser godoc
// @Summary      List the blogs of an author
// @Tags         blogs
// @Produce      json
// @Param        userId  path  string  true  "User id"
// @Success      200  {array}   domain.Blog
// @Failure      404  {object}  response.ErrorBody
// @Router       /blogs/user/{userId} [get]
func (h *BlogHandler) ListByUser(c *gin.Context) {
	blogs, err := h.blogUC.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, blogs)
}

// Create godoc
// @Summary      Create a blog with optional sections
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blog  body  CreateBlogRequest  true  "Blog JSON"
// @Success      201  {object}  domain.Blog
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	blog, err := h.blogUC.Create(c.Request.Context(), domain.CreateBlogInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Categories:  req.Categories,
		ReadingTime: req.ReadingTime,
		IsActive:    req.IsActive,
		Sections:    sectionsToInput(req.Sections),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, blog)
}

// Update godoc
// @Summary      Update a blog
// @Description  A non-null sections array replaces the existing sections.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blogId  path  string             true  "Blog id"
// @Param        blog    body  UpdateBlogRequest  true  "Partial blog JSON"
// @Success      200  {object}  domain.Blog
// @Failure      404  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /blogs/{blogId} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	blog, err := h.blogUC.Update(c.Request.Context(), c.Param("blogId"), domain.UpdateBlogInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Categories:  req.Categories,
		ReadingTime: req.ReadingTime,
		IsActive:    req.IsActive,
		Sections:    sectionsToInput(req.Sections),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, blog)
}

// Delete godoc
// @Summary      Delete a blog
// @Description  Logical by default; physicalDelete=true removes the blog
// @Description  and its sections.
// @Tags         blogs
// @Param        blogId          path   string  true   "Blog id"
// @Param        physicalDelete  query  bool    false  "Hard delete"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /blogs/{blogId} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	physical := queryBool(c, "physicalDelete")
	if err := h.blogUC.Delete(c.Request.Context(), c.Param("blogId"), physical != nil && *physical); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}

// AddSection godoc
// @Summary      Append a section to a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blogId   path  string          true  "Blog id"
// @Param        section  body  SectionRequest  true  "Section JSON"
// @Success      201  {object}  domain.BlogSection
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /blogs/{blogId}/sections [post]
func (h *BlogHandler) AddSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	section, err := h.blogUC.AddSection(c.Request.Context(), c.Param("blogId"), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, section)
}

// UpdateSection godoc
// @Summary      Update a blog section
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blogId     path  string          true  "Blog id"
// @Param        sectionId  path  string          true  "Section id"
// @Param        section    body  SectionRequest  true  "Section JSON"
// @Success      200  {object}  domain.BlogSection
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /blogs/{blogId}/sections/{sectionId} [put]
func (h *BlogHandler) UpdateSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	section, err := h.blogUC.UpdateSection(c.Request.Context(), c.Param("blogId"), c.Param("sectionId"), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, section)
}

// ReorderSections godoc
// @Summary      Reorder the sections of a blog
// @Description  The id list must contain every section of the blog exactly once.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blogId  path  string                  true  "Blog id"
// @Param        order   body  ReorderSectionsRequest  true  "Section ids in the desired order"
// @Success      200  {array}   domain.BlogSection
// @Failure      404  {object}  response.ErrorBody
// @Router       /blogs/{blogId}/sections/reorder [patch]
func (h *BlogHandler) ReorderSections(c *gin.Context) {
	var req ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sections, err := h.blogUC.ReorderSections(c.Request.Context(), c.Param("blogId"), req.SectionIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, sections)
}

// DeleteSection godoc
// @Summary      Delete a blog section
// @Tags         blogs
// @Param        blogId     path  string  true  "Blog id"
// @Param        sectionId  path  string  true  "Section id"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /blogs/{blogId}/sections/{sectionId} [delete]
func (h *BlogHandler) DeleteSection(c *gin.Context) {
	if err := h.blogUC.DeleteSection(c.Request.Context(), c.Param("blogId"), c.Param("sectionId")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
