package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type WorkExperienceHandler struct {
	workExpUC domain.WorkExperienceUsecase
}

func NewWorkExperienceHandler(group *gin.RouterGroup, workExpUC domain.WorkExperienceUsecase) {
	handler := &WorkExperienceHandler{workExpUC: workExpUC}

	experiences := group.Group("/work-experiences")
	{
		experiences.GET("", handler.List)
		experiences.GET("/:id", handler.GetByID)
		experiences.GET("/user/:userId", handler.ListByUser)
		experiences.POST("", handler.Create)
		experiences.PUT("/:id", handler.Update)
		experiences.DELETE("/:id", handler.Delete)
	}
}

type CreateWorkExperienceRequest struct {
	UserID          string     `json:"userId" binding:"required"`
	CompanyName     string     `json:"companyName" binding:"required"`
	Role            string     `json:"role" binding:"required"`
	FromYear        time.Time  `json:"fromYear" binding:"required"`
	UntilYear       *time.Time `json:"untilYear"`
	RoleDescription *string    `json:"roleDescription"`
}

type UpdateWorkExperienceRequest struct {
	CompanyName     *string    `json:"companyName"`
	Role            *string    `json:"role"`
	FromYear        *time.Time `json:"fromYear"`
	UntilYear       *time.Time `json:"untilYear"`
	RoleDescription *string    `json:"roleDescription"`
}

// List godoc
// @Summary      List all work experiences, most recent first
// @Tags         work-experiences
// @Produce      json
// @Success      200  {array}   domain.WorkExperience
// @Failure      500  {object}  response.ErrorBody
// @Router       /work-experiences [get]
func (h *WorkExperienceHandler) List(c *gin.Context) {
	exps, err := h.workExpUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, exps)
}

// GetByID godoc
// @Summary      Get a work experience by id
// @Tags         work-experiences
// @Produce      json
// @Param        id  path  string  true  "Work experience id"
// @Success      200  {object}  domain.WorkExperience
// @Failure      404  {object}  response.ErrorBody
// @Router       /work-experiences/{id} [get]
func (h *WorkExperienceHandler) GetByID(c *gin.Context) {
	exp, err := h.workExpUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, exp)
}

// ListByUser godoc
// @Summary      List the work experiences of a user
// @Tags         work-experiences
// @Produce      json
// @Param        userId  path  string  true  "User id"
// @Success      200  {array}   domain.WorkExperience
// @Failure      404  {object}  response.ErrorBody
// @Router       /work-experiences/user/{userId} [get]
func (h *WorkExperienceHandler) ListByUser(c *gin.Context) {
	exps, err := h.workExpUC.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, exps)
}

// Create godoc
// @Summary      Add a work experience to a user's curriculum
// @Tags         work-experiences
// @Accept       json
// @Produce      json
// @Param        experience  body  CreateWorkExperienceRequest  true  "Work experience JSON"
// @Success      201  {object}  domain.WorkExperience
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /work-experiences [post]
func (h *WorkExperienceHandler) Create(c *gin.Context) {
	var req CreateWorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	exp, err := h.workExpUC.Create(c.Request.Context(), req.UserID, domain.CreateWorkExperienceInput{
		CompanyName:     req.CompanyName,
		Role:            req.Role,
		FromYear:        req.FromYear,
		UntilYear:       req.UntilYear,
		RoleDescription: req.RoleDescription,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, exp)
}

// Update godoc
// @Summary      Update a work experience
// @Tags         work-experiences
// @Accept       json
// @Produce      json
// @Param        id          path  string                       true  "Work experience id"
// @Param        experience  body  UpdateWorkExperienceRequest  true  "Partial work experience JSON"
// @Success      200  {object}  domain.WorkExperience
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /work-experiences/{id} [put]
func (h *WorkExperienceHandler) Update(c *gin.Context) {
	var req UpdateWorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	exp, err := h.workExpUC.Update(c.Request.Context(), c.Param("id"), domain.UpdateWorkExperienceInput{
		CompanyName:     req.CompanyName,
		Role:            req.Role,
		FromYear:        req.FromYear,
		UntilYear:       req.UntilYear,
		RoleDescription: req.RoleDescription,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, exp)
}

// Delete godoc
// @Summary      Delete a work experience
// @Tags         work-experiences
// @Param        id  path  string  true  "Work experience id"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /work-experiences/{id} [delete]
func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	if err := h.workExpUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
