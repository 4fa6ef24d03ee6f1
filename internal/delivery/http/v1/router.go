package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kodeksa-backend/config"
	"kodeksa-backend/internal/delivery/http/middleware"
	"kodeksa-backend/internal/delivery/http/response"
	"kodeksa-backend/internal/domain"
)

type RouterDeps struct {
	VacancyUC     domain.VacancyUsecase
	ApplicationUC domain.ApplicationUsecase
	UserUC        domain.UserUsecase
	CardConfigUC  domain.CardConfigurationUsecase
	CurriculumUC  domain.CurriculumUsecase
	SkillUC       domain.SkillUsecase
	WorkExpUC     domain.WorkExperienceUsecase
	BlogUC        domain.BlogUsecase
	SolutionUC    domain.SolutionUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig()))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The apply endpoints carry a tighter per-IP limit than the global
	// one; everything else shares the default.
	applyLimiter := middleware.RateLimitMiddleware(middleware.ApplyRateLimitConfig(
		deps.Config.RateLimitApplyThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	NewVacancyHandler(api, deps.VacancyUC)
	NewApplicationHandler(api, deps.ApplicationUC, applyLimiter)
	NewUserHandler(api, deps.UserUC)
	NewCardConfigurationHandler(api, deps.CardConfigUC)
	NewCurriculumHandler(api, deps.CurriculumUC)
	NewSkillHandler(api, deps.SkillUC)
	NewWorkExperienceHandler(api, deps.WorkExpUC)
	NewBlogHandler(api, deps.BlogUC)
	NewSolutionHandler(api, deps.SolutionUC)

	return r
}
