package v1

import (
	"github.com/gin-gonic/gin"

	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(group *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := group.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/:id", handler.GetByID)
		users.GET("/slug/:slug", handler.GetBySlug)
		users.POST("", handler.Create)
		users.PATCH("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}

type CreateUserRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Role           *string `json:"role"`
	Slug           string  `json:"slug"`
	Image          *string `json:"image"`
	IsActive       *bool   `json:"isActive"`
	ShowCurriculum *bool   `json:"showCurriculum"`
}

type UpdateUserRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Role           *string `json:"role"`
	Image          *string `json:"image"`
	IsActive       *bool   `json:"isActive"`
	ShowCurriculum *bool   `json:"showCurriculum"`
}

// CreateUserResponse carries the user plus what the bootstrap managed
// to provision alongside it.
type CreateUserResponse struct {
	User      *domain.User           `json:"user"`
	Bootstrap domain.BootstrapResult `json:"bootstrap"`
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Items per page"
// @Param        isActive  query  bool    false  "Filter by active flag"
// @Param        search    query  string  false  "Search by name or email"
// @Success      200  {object}  domain.Page[domain.User]
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	opts := domain.UserListOptions{
		ListOptions: listOptions(c),
		IsActive:    queryBool(c, "isActive"),
		Search:      c.Query("search"),
	}

	page, err := h.userUC.List(c.Request.Context(), opts)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, page)
}

// GetByID godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id              path   string  true   "User id"
// @Param        loadCardConfig  query  bool    false  "Include card configuration"
// @Param        loadCurriculum  query  bool    false  "Include curriculum"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	cardCfg := queryBool(c, "loadCardConfig")
	curriculum := queryBool(c, "loadCurriculum")

	user, err := h.userUC.GetByID(c.Request.Context(), c.Param("id"), domain.UserLoadOptions{
		LoadCardConfig: cardCfg != nil && *cardCfg,
		LoadCurriculum: curriculum != nil && *curriculum,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, user)
}

// GetBySlug godoc
// @Summary      Get a user by slug
// @Tags         users
// @Produce      json
// @Param        slug  path  string  true  "User slug"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/slug/{slug} [get]
func (h *UserHandler) GetBySlug(c *gin.Context) {
	user, err := h.userUC.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, user)
}

// Create godoc
// @Summary      Create a user
// @Description  Also provisions the default card configuration and an
// @Description  empty curriculum; partial bootstrap failures are reported
// @Description  in the response, not as errors.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body  CreateUserRequest  true  "User JSON"
// @Success      201  {object}  CreateUserResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, bootstrap, err := h.userUC.Create(c.Request.Context(), domain.CreateUserInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           req.Role,
		Slug:           req.Slug,
		Image:          req.Image,
		IsActive:       req.IsActive,
		ShowCurriculum: req.ShowCurriculum,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, CreateUserResponse{User: user, Bootstrap: bootstrap})
}

// Update godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "User id"
// @Param        user  body  UpdateUserRequest  true  "Partial user JSON"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userUC.Update(c.Request.Context(), c.Param("id"), domain.UpdateUserInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           req.Role,
		Image:          req.Image,
		IsActive:       req.IsActive,
		ShowCurriculum: req.ShowCurriculum,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, user)
}

// Delete godoc
// @Summary      Deactivate a user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
