package v1

import (
	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type CurriculumHandler struct {
	curriculumUC domain.CurriculumUsecase
}

func NewCurriculumHandler(group *gin.RouterGroup, curriculumUC domain.CurriculumUsecase) {
	handler := &CurriculumHandler{curriculumUC: curriculumUC}

	curriculums := group.Group("/curriculums")
	{
		curriculums.GET("/:id", handler.GetByID)
		curriculums.GET("/user/:userId", handler.GetByUserID)
		curriculums.POST("", handler.Create)
		curriculums.PUT("/upsert", handler.CreateOrUpdate)
		curriculums.PUT("/:id", handler.Update)
		curriculums.DELETE("/:id", handler.Delete)
	}
}

type CurriculumRequest struct {
	AboutMe      *string `json:"aboutMe"`
	GithubSlug   *string `json:"githubSlug"`
	LinkedinSlug *string `json:"linkedinSlug"`
}

type CreateCurriculumRequest struct {
	UserID string `json:"userId" binding:"required"`
	CurriculumRequest
}

func (r CurriculumRequest) toInput() domain.UpsertCurriculumInput {
	return domain.UpsertCurriculumInput{
		AboutMe:      r.AboutMe,
		GithubSlug:   r.GithubSlug,
		LinkedinSlug: r.LinkedinSlug,
	}
}

// GetByID godoc
// @Summary      Get a curriculum by id
// @Tags         curriculums
// @Produce      json
// @Param        id  path  string  true  "Curriculum id"
// @Success      200  {object}  domain.Curriculum
// @Failure      404  {object}  response.ErrorBody
// @Router       /curriculums/{id} [get]
func (h *CurriculumHandler) GetByID(c *gin.Context) {
	cur, err := h.curriculumUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, cur)
}

// GetByUserID godoc
// @Summary      Get the curriculum of a user with skills and experience
// @Tags         curriculums
// @Produce      json
// @Param        userId  path  string  true  "User id"
// @Success      200  {object}  domain.Curriculum
// @Failure      404  {object}  response.ErrorBody
// @Router       /curriculums/user/{userId} [get]
func (h *CurriculumHandler) GetByUserID(c *gin.Context) {
	cur, err := h.curriculumUC.GetByUserID(c.Request.Context(), c.Param("userId"), true)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, cur)
}

// Create godoc
// @Summary      Create a curriculum for a user
// @Tags         curriculums
// @Accept       json
// @Produce      json
// @Param        curriculum  body  CreateCurriculumRequest  true  "Curriculum JSON"
// @Success      201  {object}  domain.Curriculum
// @Failure      404  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /curriculums [post]
func (h *CurriculumHandler) Create(c *gin.Context) {
	var req CreateCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cur, err := h.curriculumUC.Create(c.Request.Context(), req.UserID, req.toInput(), false)
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, cur)
}

// Update godoc
// @Summary      Update a curriculum
// @Tags         curriculums
// @Accept       json
// @Produce      json
// @Param        id          path  string             true  "Curriculum id"
// @Param        curriculum  body  CurriculumRequest  true  "Partial curriculum JSON"
// @Success      200  {object}  domain.Curriculum
// @Failure      404  {object}  response.ErrorBody
// @Router       /curriculums/{id} [put]
func (h *CurriculumHandler) Update(c *gin.Context) {
	var req CurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cur, err := h.curriculumUC.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, cur)
}

// CreateOrUpdate godoc
// @Summary      Upsert the curriculum of a user
// @Tags         curriculums
// @Accept       json
// @Produce      json
// @Param        curriculum  body  CreateCurriculumRequest  true  "Curriculum JSON"
// @Success      200  {object}  domain.Curriculum
// @Failure      404  {object}  response.ErrorBody
// @Router       /curriculums/upsert [put]
func (h *CurriculumHandler) CreateOrUpdate(c *gin.Context) {
	var req CreateCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cur, err := h.curriculumUC.CreateOrUpdate(c.Request.Context(), req.UserID, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, cur)
}

// Delete godoc
// @Summary      Delete a curriculum
// @Tags         curriculums
// @Param        id  path  string  true  "Curriculum id"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /curriculums/{id} [delete]
func (h *CurriculumHandler) Delete(c *gin.Context) {
	if err := h.curriculumUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
