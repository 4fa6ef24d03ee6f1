package v1

import (
	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(group *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := group.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.GET("/:id", handler.GetByID)
		skills.GET("/user/:userId", handler.ListByUser)
		skills.POST("", handler.Create)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

type CreateSkillRequest struct {
	UserID         string  `json:"userId" binding:"required"`
	SkillName      string  `json:"skillName" binding:"required"`
	URLCertificate *string `json:"urlCertificate"`
}

type UpdateSkillRequest struct {
	SkillName      *string `json:"skillName"`
	URLCertificate *string `json:"urlCertificate"`
}

// List godoc
// @Summary      List all skills
// @Tags         skills
// @Produce      json
// @Success      200  {array}   domain.Skill
// @Failure      500  {object}  response.ErrorBody
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, skills)
}

// GetByID godoc
// @Summary      Get a skill by id
// @Tags         skills
// @Produce      json
// @Param        id  path  string  true  "Skill id"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/{id} [get]
func (h *SkillHandler) GetByID(c *gin.Context) {
	skill, err := h.skillUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, skill)
}

// ListByUser godoc
// @Summary      List the skills of a user
// @Tags         skills
// @Produce      json
// @Param        userId  path  string  true  "User id"
// @Success      200  {array}   domain.Skill
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/user/{userId} [get]
func (h *SkillHandler) ListByUser(c *gin.Context) {
	skills, err := h.skillUC.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, skills)
}

// Create godoc
// @Summary      Add a skill to a user
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body  CreateSkillRequest  true  "Skill JSON"
// @Success      201  {object}  domain.Skill
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	skill, err := h.skillUC.Create(c.Request.Context(), req.UserID, domain.CreateSkillInput{
		SkillName:      req.SkillName,
		URLCertificate: req.URLCertificate,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, skill)
}

// Update godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id     path  string              true  "Skill id"
// @Param        skill  body  UpdateSkillRequest  true  "Partial skill JSON"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), c.Param("id"), domain.UpdateSkillInput{
		SkillName:      req.SkillName,
		URLCertificate: req.URLCertificate,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Param        id  path  string  true  "Skill id"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
