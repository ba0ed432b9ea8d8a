package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Metrics())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := AuthJWT(h.JWTSecret)
	rl := RateLimit(h.Redis, h.RateLimitPerMin)

	api := r.Group("/api")
	{
		api.POST("/users", rl, h.Register)
		api.POST("/auth", rl, h.Login)
		api.GET("/auth", auth, h.Me)

		p := api.Group("/profile")
		{
			p.GET("/me", auth, h.MyProfile)
			p.POST("", auth, h.UpsertProfile)
			p.GET("", h.ListProfiles)
			p.GET("/user/:user_id", h.ProfileByUser)
			p.DELETE("", auth, h.DeleteAccount)
			p.PUT("/experience", auth, h.AddExperience)
			p.DELETE("/experience/:exp_id", auth, h.RemoveExperience)
			p.PUT("/education", auth, h.AddEducation)
			p.DELETE("/education/:edu_id", auth, h.RemoveEducation)
			p.GET("/github/:username", h.GithubRepos)
		}
	}
	return r
}
