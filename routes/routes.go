package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"weatherbot-backend/config"
	"weatherbot-backend/controllers"
	"weatherbot-backend/utils"
)

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Log   *zap.Logger
	Auth  *controllers.AuthController
	Admin *controllers.AdminController
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(deps.Log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", deps.Auth.Login)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		users := api.Group("/users")
		{
			users.GET("", deps.Admin.GetUsers)
			users.GET("/:id/events", deps.Admin.GetUserEvents)
			users.POST("/:id/check", deps.Admin.RunCheck)
		}

		api.GET("/logs", deps.Admin.GetLogs)
	}

	return r
}
