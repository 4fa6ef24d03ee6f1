package v1

import (
	"io"

	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(group *gin.RouterGroup, applicationUC domain.ApplicationUsecase, applyLimiter gin.HandlerFunc) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := group.Group("/applications")
	{
		applications.GET("", handler.List)
		applications.GET("/:id", handler.GetByID)
		applications.GET("/vacancy/:vacancyId", handler.ListByVacancy)
		applications.POST("", applyLimiter, handler.Create)
		applications.POST("/with-cv", applyLimiter, handler.CreateWithCV)
		applications.PUT("/:id", handler.Update)
		applications.PATCH("/:id/status", handler.UpdateStatus)
		applications.DELETE("/:id", handler.Delete)
	}
}

type CreateApplicationRequest struct {
	VacancyID             string  `json:"vacancyId" binding:"required"`
	Name                  string  `json:"name" binding:"required"`
	Email                 string  `json:"email" binding:"required"`
	Phone                 string  `json:"phone" binding:"required"`
	ApplicationMotivation *string `json:"applicationMotivation"`
	CvURL                 *string `json:"cvUrl"`
	IsActive              *bool   `json:"isActive"`
}

type UpdateApplicationRequest struct {
	VacancyID             *string `json:"vacancyId"`
	Name                  *string `json:"name"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	ApplicationMotivation *string `json:"applicationMotivation"`
	CvURL                 *string `json:"cvUrl"`
	IsActive              *bool   `json:"isActive"`
}

func (r CreateApplicationRequest) toInput() domain.CreateApplicationInput {
	return domain.CreateApplicationInput{
		VacancyID:             r.VacancyID,
		Name:                  r.Name,
		Email:                 r.Email,
		Phone:                 r.Phone,
		ApplicationMotivation: r.ApplicationMotivation,
		CvURL:                 r.CvURL,
		IsActive:              r.IsActive,
	}
}

// List godoc
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Param        page       query  int     false  "Page number"
// @Param        limit      query  int     false  "Items per page"
// @Param        isActive   query  bool    false  "Filter by active flag"
// @Param        status     query  string  false  "Filter by status"
// @Param        vacancyId  query  string  false  "Filter by vacancy"
// @Param        search     query  string  false  "Free-text search"
// @Success      200  {object}  domain.Page[domain.Application]
// @Router       /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	opts := domain.ApplicationListOptions{
		ListOptions: listOptions(c),
		IsActive:    queryBool(c, "isActive"),
		Status:      c.Query("status"),
		Search:      c.Query("search"),
	}

	page, err := h.applicationUC.List(c.Request.Context(), opts, c.Query("vacancyId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page)
}

// ListByVacancy godoc
// @Summary      List applications for a vacancy
// @Tags         applications
// @Produce      json
// @Param        vacancyId  path  string  true  "Vacancy id"
// @Success      200  {object}  domain.Page[domain.Application]
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/vacancy/{vacancyId} [get]
func (h *ApplicationHandler) ListByVacancy(c *gin.Context) {
	opts := domain.ApplicationListOptions{
		ListOptions: listOptions(c),
		IsActive:    queryBool(c, "isActive"),
		Status:      c.Query("status"),
		Search:      c.Query("search"),
	}

	page, err := h.applicationUC.ListByVacancy(c.Request.Context(), c.Param("vacancyId"), opts)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page)
}

// GetByID godoc
// @Summary      Get an application by id
// @Tags         applications
// @Produce      json
// @Param        id  path  string  true  "Application id"
// @Success      200  {object}  domain.Application
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	app, err := h.applicationUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, app)
}

// Create godoc
// @Summary      Submit an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body  CreateApplicationRequest  true  "Application JSON"
// @Success      201  {object}  domain.Application
// @Failure      400  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	app, err := h.applicationUC.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, app)
}

// CreateWithCV godoc
// @Summary      Submit an application with a CV file
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        vacancyId  formData  string  true   "Vacancy id"
// @Param        name       formData  string  true   "Applicant name"
// @Param        email      formData  string  true   "Applicant email"
// @Param        phone      formData  string  true   "Applicant phone"
// @Param        cv         formData  file    true   "CV file"
// @Success      201  {object}  domain.Application
// @Failure      400  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /applications/with-cv [post]
func (h *ApplicationHandler) CreateWithCV(c *gin.Context) {
	var req CreateApplicationRequest
	req.VacancyID = c.PostForm("vacancyId")
	req.Name = c.PostForm("name")
	req.Email = c.PostForm("email")
	req.Phone = c.PostForm("phone")
	if motivation := c.PostForm("applicationMotivation"); motivation != "" {
		req.ApplicationMotivation = &motivation
	}

	fileHeader, err := c.FormFile("cv")
	if err != nil {
		bindError(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(domain.ErrCVUpload)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(domain.ErrCVUpload)
		return
	}

	app, err := h.applicationUC.CreateWithCV(c.Request.Context(), req.toInput(), domain.CVFile{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, app)
}

// Update godoc
// @Summary      Update an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path  string                    true  "Application id"
// @Param        application  body  UpdateApplicationRequest  true  "Partial application JSON"
// @Success      200  {object}  domain.Application
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/{id} [put]
func (h *ApplicationHandler) Update(c *gin.Context) {
	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	app, err := h.applicationUC.Update(c.Request.Context(), c.Param("id"), domain.UpdateApplicationInput{
		VacancyID:             req.VacancyID,
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		ApplicationMotivation: req.ApplicationMotivation,
		CvURL:                 req.CvURL,
		IsActive:              req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, app)
}

// UpdateStatus godoc
// @Summary      Change application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path  string               true  "Application id"
// @Param        status  body  ChangeStatusRequest  true  "New status"
// @Success      200  {object}  domain.Application
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, app)
}

// Delete godoc
// @Summary      Delete an application
// @Description  Logical by default; physicalDelete=true removes the row.
// @Tags         applications
// @Param        id              path   string  true   "Application id"
// @Param        physicalDelete  query  bool    false  "Hard delete"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	physical := queryBool(c, "physicalDelete")
	if err := h.applicationUC.Delete(c.Request.Context(), c.Param("id"), physical != nil && *physical); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
