package v1

import (
	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(group *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	vacancies := group.Group("/vacancies")
	{
		vacancies.GET("", handler.List)
		vacancies.GET("/:id", handler.GetByID)
		vacancies.GET("/slug/:slug", handler.GetBySlug)
		vacancies.POST("", handler.Create)
		vacancies.PUT("/:id", handler.Update)
		vacancies.PATCH("/:id/status", handler.ChangeStatus)
		vacancies.DELETE("/:id", handler.Delete)
	}
}

type CreateVacancyRequest struct {
	JobTitle         string   `json:"jobTitle" binding:"required"`
	Slug             string   `json:"slug"`
	Mode             string   `json:"mode" binding:"required"`
	YearsExperience  int      `json:"yearsExperience"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	StackRequired    []string `json:"stackRequired" binding:"required,min=1"`
	IsActive         *bool    `json:"isActive"`
	Status           string   `json:"status"`
}

type UpdateVacancyRequest struct {
	JobTitle         *string  `json:"jobTitle"`
	Slug             *string  `json:"slug"`
	Mode             *string  `json:"mode"`
	YearsExperience  *int     `json:"yearsExperience"`
	ShortDescription *string  `json:"shortDescription"`
	Description      *string  `json:"description"`
	StackRequired    []string `json:"stackRequired"`
	IsActive         *bool    `json:"isActive"`
	Status           *string  `json:"status"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List godoc
// @Summary      List vacancies
// @Tags         vacancies
// @Produce      json
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Items per page"
// @Param        isActive  query  bool    false  "Filter by active flag"
// @Param        status    query  string  false  "Filter by status"
// @Param        mode      query  string  false  "Filter by work mode"
// @Param        search    query  string  false  "Free-text search"
// @Success      200  {object}  domain.Page[domain.Vacancy]
// @Router       /vacancies [get]
func (h *VacancyHandler) List(c *gin.Context) {
	opts := domain.VacancyListOptions{
		ListOptions: listOptions(c),
		IsActive:    queryBool(c, "isActive"),
		Status:      c.Query("status"),
		Mode:        c.Query("mode"),
		Search:      c.Query("search"),
	}

	page, err := h.vacancyUC.List(c.Request.Context(), opts)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page)
}

// GetByID godoc
// @Summary      Get a vacancy by id
// @Tags         vacancies
// @Produce      json
// @Param        id                   path   string  true   "Vacancy id"
// @Param        includeApplications  query  bool    false  "Eager-load applications"
// @Success      200  {object}  domain.Vacancy
// @Failure      404  {object}  response.ErrorBody
// @Router       /vacancies/{id} [get]
func (h *VacancyHandler) GetByID(c *gin.Context) {
	include := queryBool(c, "includeApplications")
	vacancy, err := h.vacancyUC.GetByID(c.Request.Context(), c.Param("id"), include != nil && *include)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, vacancy)
}

// GetBySlug godoc
// @Summary      Get a vacancy by slug
// @Tags         vacancies
// @Produce      json
// @Param        slug  path  string  true  "Vacancy slug"
// @Success      200  {object}  domain.Vacancy
// @Failure      404  {object}  response.ErrorBody
// @Router       /vacancies/slug/{slug} [get]
func (h *VacancyHandler) GetBySlug(c *gin.Context) {
	include := queryBool(c, "includeApplications")
	vacancy, err := h.vacancyUC.GetBySlug(c.Request.Context(), c.Param("slug"), include != nil && *include)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, vacancy)
}

// Create godoc
// @Summary      Create a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        vacancy  body  CreateVacancyRequest  true  "Vacancy JSON"
// @Success      201  {object}  domain.Vacancy
// @Failure      400  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /vacancies [post]
func (h *VacancyHandler) Create(c *gin.Context) {
	var req CreateVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	vacancy, err := h.vacancyUC.Create(c.Request.Context(), domain.CreateVacancyInput{
		JobTitle:         req.JobTitle,
		Slug:             req.Slug,
		Mode:             req.Mode,
		YearsExperience:  req.YearsExperience,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		StackRequired:    req.StackRequired,
		IsActive:         req.IsActive,
		Status:           req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, vacancy)
}

// Update godoc
// @Summary      Update a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id       path  string                true  "Vacancy id"
// @Param        vacancy  body  UpdateVacancyRequest  true  "Partial vacancy JSON"
// @Success      200  {object}  domain.Vacancy
// @Failure      404  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /vacancies/{id} [put]
func (h *VacancyHandler) Update(c *gin.Context) {
	var req UpdateVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	vacancy, err := h.vacancyUC.Update(c.Request.Context(), c.Param("id"), domain.UpdateVacancyInput{
		JobTitle:         req.JobTitle,
		Slug:             req.Slug,
		Mode:             req.Mode,
		YearsExperience:  req.YearsExperience,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		StackRequired:    req.StackRequired,
		IsActive:         req.IsActive,
		Status:           req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, vacancy)
}

// ChangeStatus godoc
// @Summary      Change vacancy status
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id      path  string               true  "Vacancy id"
// @Param        status  body  ChangeStatusRequest  true  "New status"
// @Success      200  {object}  domain.Vacancy
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /vacancies/{id}/status [patch]
func (h *VacancyHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	vacancy, err := h.vacancyUC.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, vacancy)
}

// Delete godoc
// @Summary      Delete a vacancy
// @Description  Logical by default; physicalDelete=true removes the row.
// @Tags         vacancies
// @Param        id              path   string  true   "Vacancy id"
// @Param        physicalDelete  query  bool    false  "Hard delete"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /vacancies/{id} [delete]
func (h *VacancyHandler) Delete(c *gin.Context) {
	physical := queryBool(c, "physicalDelete")
	if err := h.vacancyUC.Delete(c.Request.Context(), c.Param("id"), physical != nil && *physical); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
