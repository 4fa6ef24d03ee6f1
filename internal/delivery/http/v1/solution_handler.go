package v1

import (
	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type SolutionHandler struct {
	solutionUC domain.SolutionUsecase
}

func NewSolutionHandler(group *gin.RouterGroup, solutionUC domain.SolutionUsecase) {
	handler := &SolutionHandler{solutionUC: solutionUC}

	solutions := group.Group("/solutions")
	{
		solutions.GET("", handler.List)
		solutions.GET("/:solutionId", handler.GetByID)
		solutions.POST("", handler.Create)
		solutions.PUT("/:solutionId", handler.Update)
		solutions.DELETE("/:solutionId", handler.Delete)

		solutions.GET("/:solutionId/features", handler.ListFeatures)
		solutions.POST("/:solutionId/features", handler.AddFeature)
		solutions.PUT("/:solutionId/features/:featureId", handler.UpdateFeature)
		solutions.DELETE("/:solutionId/features/:featureId", handler.DeleteFeature)
	}
}

type CreateSolutionRequest struct {
	Title       string   `json:"title" binding:"required"`
	Icon        string   `json:"icon" binding:"required"`
	Description string   `json:"description" binding:"required"`
	IsActive    *bool    `json:"isActive"`
	Order       *int     `json:"order"`
	Features    []string `json:"features"`
}

type UpdateSolutionRequest struct {
	Title       *string `json:"title"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

type CreateFeatureRequest struct {
	FeatureDescription string `json:"featureDescription" binding:"required"`
	IsActive           *bool  `json:"isActive"`
}

type UpdateFeatureRequest struct {
	FeatureDescription *string `json:"featureDescription"`
	IsActive           *bool   `json:"isActive"`
}

// List godoc
// @Summary      List solutions ordered for the landing page
// @Tags         solutions
// @Produce      json
// @Param        page             query  int   false  "Page number"
// @Param        limit            query  int   false  "Items per page"
// @Param        isActive         query  bool  false  "Filter by active flag"
// @Param        includeFeatures  query  bool  false  "Eager-load features"
// @Success      200  {object}  domain.Page[domain.Solution]
// @Router       /solutions [get]
func (h *SolutionHandler) List(c *gin.Context) {
	include := queryBool(c, "includeFeatures")
	opts := domain.SolutionListOptions{
		ListOptions:     listOptions(c),
		IsActive:        queryBool(c, "isActive"),
		IncludeFeatures: include != nil && *include,
	}

	page, err := h.solutionUC.List(c.Request.Context(), opts)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page)
}

// GetByID godoc
// @Summary      Get a solution with its features
// @Tags         solutions
// @Produce      json
// @Param        solutionId  path  string  true  "Solution id"
// @Success      200  {object}  domain.Solution
// @Failure      404  {object}  response.ErrorBody
// @Router       /solutions/{solutionId} [get]
func (h *SolutionHandler) GetByID(c *gin.Context) {
	solution, err := h.solutionUC.GetByID(c.Request.Context(), c.Param("solutionId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, solution)
}

// Create godoc
// @Summary      Create a solution with optional feature bullet points
// @Tags         solutions
// @Accept       json
// @Produce      json
// @Param        solution  body  CreateSolutionRequest  true  "Solution JSON"
// @Success      201  {object}  domain.Solution
// @Failure      400  {object}  response.ErrorBody
// @Router       /solutions [post]
func (h *SolutionHandler) Create(c *gin.Context) {
	var req CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	solution, err := h.solutionUC.Create(c.Request.Context(), domain.CreateSolutionInput{
		Title:       req.Title,
		Icon:        req.Icon,
		Description: req.Description,
		IsActive:    req.IsActive,
		Order:       req.Order,
		Features:    req.Features,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, solution)
}

// Update godoc
// @Summary      Update a solution
// @Tags         solutions
// @Accept       json
// @Produce      json
// @Param        solutionId  path  string                 true  "Solution id"
// @Param        solution    body  UpdateSolutionRequest  true  "Partial solution JSON"
// @Success      200  {object}  domain.Solution
// @Failure      404  {object}  response.ErrorBody
// @Router       /solutions/{solutionId} [put]
func (h *SolutionHandler) Update(c *gin.Context) {
	var req UpdateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	solution, err := h.solutionUC.Update(c.Request.Context(), c.Param("solutionId"), domain.UpdateSolutionInput{
		Title:       req.Title,
		Icon:        req.Icon,
		Description: req.Description,
		IsActive:    req.IsActive,
		Order:       req.Order,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, solution)
}

// Delete godoc
// @Summary      Delete a solution
// @Description  Logical by default; physicalDelete=true removes the
// @Description  solution and its features.
// @Tags         solutions
// @Param        solutionId      path   string  true   "Solution id"
// @Param        physicalDelete  query  bool    false  "Hard delete"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /solutions/{solutionId} [delete]
func (h *SolutionHandler) Delete(c *gin.Context) {
	physical := queryBool(c, "physicalDelete")
	if err := h.solutionUC.Delete(c.Request.Context(), c.Param("solutionId"), physical != nil && *physical); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}

// ListFeatures godoc
// @Summary      List the features of a solution
// @Tags         solutions
// @Produce      json
// @Param        solutionId  path  string  true  "Solution id"
// @Success      200  {array}   domain.Feature
// @Failure      404  {object}  response.ErrorBody
// @Router       /solutions/{solutionId}/features [get]
func (h *SolutionHandler) ListFeatures(c *gin.Context) {
	features, err := h.solutionUC.ListFeatures(c.Request.Context(), c.Param("solutionId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, features)
}

// AddFeature godoc
// @Summary      Add a feature to a solution
// @Tags         solutions
// @Accept       json
// @Produce      json
// @Param        solutionId  path  string                true  "Solution id"
// @Param        feature     body  CreateFeatureRequest  true  "Feature JSON"
// @Success      201  {object}  domain.Feature
// @Failure      404  {object}  response.ErrorBody
// @Router       /solutions/{solutionId}/features [post]
func (h *SolutionHandler) AddFeature(c *gin.Context) {
	var req CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	feature, err := h.solutionUC.AddFeature(c.Request.Context(), c.Param("solutionId"), domain.CreateFeatureInput{
		FeatureDescription: req.FeatureDescription,
		IsActive:           req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, feature)
}

// UpdateFeature godoc
// @Summary      Update a feature
// @Tags         solutions
// @Accept       json
// @Produce      json
// @Param        solutionId  path  string                true  "Solution id"
// @Param        featureId   path  string                true  "Feature id"
// @Param        feature     body  UpdateFeatureRequest  true  "Partial feature JSON"
// @Success      200  {object}  domain.Feature
// @Failure      404  {object}  response.ErrorBody
// @Router       /solutions/{solutionId}/features/{featureId} [put]
func (h *SolutionHandler) UpdateFeature(c *gin.Context) {
	var req UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	feature, err := h.solutionUC.UpdateFeature(c.Request.Context(), c.Param("solutionId"), c.Param("featureId"), domain.UpdateFeatureInput{
		FeatureDescription: req.FeatureDescription,
		IsActive:           req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, feature)
}

// DeleteFeature godoc
// @Summary      Delete a feature
// @Tags         solutions
// @Param        solutionId  path  string  true  "Solution id"
// @Param        featureId   path  string  true  "Feature id"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /solutions/{solutionId}/features/{featureId} [delete]
func (h *SolutionHandler) DeleteFeature(c *gin.Context) {
	if err := h.solutionUC.DeleteFeature(c.Request.Context(), c.Param("solutionId"), c.Param("featureId")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
