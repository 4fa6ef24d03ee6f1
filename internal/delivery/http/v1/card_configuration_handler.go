package v1

import (
	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type CardConfigurationHandler struct {
	cardConfigUC domain.CardConfigurationUsecase
}

func NewCardConfigurationHandler(group *gin.RouterGroup, cardConfigUC domain.CardConfigurationUsecase) {
	handler := &CardConfigurationHandler{cardConfigUC: cardConfigUC}

	configs := group.Group("/card-configurations")
	{
		configs.GET("/:id", handler.GetByID)
		configs.GET("/user/:userId", handler.GetByUserID)
		configs.POST("", handler.Create)
		configs.PUT("/:id", handler.Update)
		configs.PATCH("/:id/reset", handler.Reset)
		configs.DELETE("/:id", handler.Delete)
	}
}

type CreateCardConfigurationRequest struct {
	UserID             string  `json:"userId" binding:"required"`
	ImageSize          *int    `json:"imageSize"`
	BgColor            *string `json:"bgColor"`
	TextAbove          *string `json:"textAbove"`
	TextAboveColor     *string `json:"textAboveColor"`
	AboveFontFamily    *string `json:"aboveFontFamily"`
	AboveFontSize      *string `json:"aboveFontSize"`
	AboveFontWeight    *string `json:"aboveFontWeight"`
	AboveLetterSpacing *string `json:"aboveLetterSpacing"`
	AboveTextTransform *string `json:"aboveTextTransform"`
	AboveTextTopOffset *string `json:"aboveTextTopOffset"`
	TextBelow          *string `json:"textBelow"`
	TextBelowColor     *string `json:"textBelowColor"`
	BelowFontFamily    *string `json:"belowFontFamily"`
	BelowFontSize      *string `json:"belowFontSize"`
	BelowFontWeight    *string `json:"belowFontWeight"`
	BelowLetterSpacing *string `json:"belowLetterSpacing"`
	BelowTextTransform *string `json:"belowTextTransform"`
}

type UpdateCardConfigurationRequest struct {
	ImageSize          *int    `json:"imageSize"`
	BgColor            *string `json:"bgColor"`
	TextAbove          *string `json:"textAbove"`
	TextAboveColor     *string `json:"textAboveColor"`
	AboveFontFamily    *string `json:"aboveFontFamily"`
	AboveFontSize      *string `json:"aboveFontSize"`
	AboveFontWeight    *string `json:"aboveFontWeight"`
	AboveLetterSpacing *string `json:"aboveLetterSpacing"`
	AboveTextTransform *string `json:"aboveTextTransform"`
	AboveTextTopOffset *string `json:"aboveTextTopOffset"`
	TextBelow          *string `json:"textBelow"`
	TextBelowColor     *string `json:"textBelowColor"`
	BelowFontFamily    *string `json:"belowFontFamily"`
	BelowFontSize      *string `json:"belowFontSize"`
	BelowFontWeight    *string `json:"belowFontWeight"`
	BelowLetterSpacing *string `json:"belowLetterSpacing"`
	BelowTextTransform *string `json:"belowTextTransform"`
}

// GetByID godoc
// @Summary      Get a card configuration by id
// @Tags         card-configurations
// @Produce      json
// @Param        id  path  string  true  "Card configuration id"
// @Success      200  {object}  domain.CardConfiguration
// @Failure      404  {object}  response.ErrorBody
// @Router       /card-configurations/{id} [get]
func (h *CardConfigurationHandler) GetByID(c *gin.Context) {
	cfg, err := h.cardConfigUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, cfg)
}

// GetByUserID godoc
// @Summary      Get the card configuration of a user
// @Tags         card-configurations
// @Produce      json
// @Param        userId  path  string  true  "User id"
// @Success      200  {object}  domain.CardConfiguration
// @Failure      404  {object}  response.ErrorBody
// @Router       /card-configurations/user/{userId} [get]
func (h *CardConfigurationHandler) GetByUserID(c *gin.Context) {
	cfg, err := h.cardConfigUC.GetByUserID(c.Request.Context(), c.Param("userId"), true)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, cfg)
}

// Create godoc
// @Summary      Create the card configuration for a user
// @Tags         card-configurations
// @Accept       json
// @Produce      json
// @Param        config  body  CreateCardConfigurationRequest  true  "Configuration JSON; omitted styling fields take the defaults"
// @Success      201  {object}  domain.CardConfiguration
// @Failure      404  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /card-configurations [post]
func (h *CardConfigurationHandler) Create(c *gin.Context) {
	var req CreateCardConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cfg, err := h.cardConfigUC.Create(c.Request.Context(), req.UserID, domain.UpdateCardConfigurationInput{
		ImageSize:          req.ImageSize,
		BgColor:            req.BgColor,
		TextAbove:          req.TextAbove,
		TextAboveColor:     req.TextAboveColor,
		AboveFontFamily:    req.AboveFontFamily,
		AboveFontSize:      req.AboveFontSize,
		AboveFontWeight:    req.AboveFontWeight,
		AboveLetterSpacing: req.AboveLetterSpacing,
		AboveTextTransform: req.AboveTextTransform,
		AboveTextTopOffset: req.AboveTextTopOffset,
		TextBelow:          req.TextBelow,
		TextBelowColor:     req.TextBelowColor,
		BelowFontFamily:    req.BelowFontFamily,
		BelowFontSize:      req.BelowFontSize,
		BelowFontWeight:    req.BelowFontWeight,
		BelowLetterSpacing: req.BelowLetterSpacing,
		BelowTextTransform: req.BelowTextTransform,
	}, false)
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, cfg)
}

// Update godoc
// @Summary      Update a card configuration
// @Tags         card-configurations
// @Accept       json
// @Produce      json
// @Param        id      path  string                          true  "Card configuration id"
// @Param        config  body  UpdateCardConfigurationRequest  true  "Partial configuration JSON"
// @Success      200  {object}  domain.CardConfiguration
// @Failure      404  {object}  response.ErrorBody
// @Router       /card-configurations/{id} [put]
func (h *CardConfigurationHandler) Update(c *gin.Context) {
	var req UpdateCardConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cfg, err := h.cardConfigUC.Update(c.Request.Context(), c.Param("id"), domain.UpdateCardConfigurationInput{
		ImageSize:          req.ImageSize,
		BgColor:            req.BgColor,
		TextAbove:          req.TextAbove,
		TextAboveColor:     req.TextAboveColor,
		AboveFontFamily:    req.AboveFontFamily,
		AboveFontSize:      req.AboveFontSize,
		AboveFontWeight:    req.AboveFontWeight,
		AboveLetterSpacing: req.AboveLetterSpacing,
		AboveTextTransform: req.AboveTextTransform,
		AboveTextTopOffset: req.AboveTextTopOffset,
		TextBelow:          req.TextBelow,
		TextBelowColor:     req.TextBelowColor,
		BelowFontFamily:    req.BelowFontFamily,
		BelowFontSize:      req.BelowFontSize,
		BelowFontWeight:    req.BelowFontWeight,
		BelowLetterSpacing: req.BelowLetterSpacing,
		BelowTextTransform: req.BelowTextTransform,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, cfg)
}

// Reset godoc
// @Summary      Reset a card configuration to neutral defaults
// @Tags         card-configurations
// @Produce      json
// @Param        id  path  string  true  "Card configuration id"
// @Success      200  {object}  domain.CardConfiguration
// @Failure      404  {object}  response.ErrorBody
// @Router       /card-configurations/{id}/reset [patch]
func (h *CardConfigurationHandler) Reset(c *gin.Context) {
	cfg, err := h.cardConfigUC.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, cfg)
}

// Delete godoc
// @Summary      Delete a card configuration
// @Tags         card-configurations
// @Param        id  path  string  true  "Card configuration id"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /card-configurations/{id} [delete]
func (h *CardConfigurationHandler) Delete(c *gin.Context) {
	if err := h.cardConfigUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
