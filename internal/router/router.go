// Package router binds the route table and global middleware. It is built
// from injected handlers so tests can mount the complete application.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/telconnect/telecom-network/internal/handler"
	"github.com/telconnect/telecom-network/internal/middleware"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

const apiVersion = "1.0.0"

type Config struct {
	CORSOrigin string
	Production bool
}

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Post     *handler.PostHandler
	Job      *handler.JobHandler
	Resource *handler.ResourceHandler
}

// New assembles the engine. auth is the bearer-token middleware produced
// by middleware.Auth; it is passed in so tests can build it against their
// own database.
func New(cfg Config, auth gin.HandlerFunc, h Handlers) *gin.Engine {
	r := gin.New()

	// Final fallback: anything that panics past the handlers is logged
	// and surfaced as a plain 500 envelope.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Log.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal Server Error",
		})
	}))

	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.HSTS(cfg.Production))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Telecom Network API is running",
			"version": apiVersion,
		})
	})

	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)

		users := api.Group("/users")
		{
			users.GET("/me", auth, h.User.Me)
			users.PUT("/me", auth, h.User.UpdateMe)
			users.GET("", auth, adminOnly, h.User.List)
			users.GET("/:id", h.User.GetByID)
			users.DELETE("/:id", auth, adminOnly, h.User.Delete)
		}

		posts := api.Group("/posts")
		{
			posts.POST("", auth, h.Post.Create)
			posts.GET("", h.Post.List)
			posts.GET("/:id", h.Post.Get)
			posts.PUT("/:id", auth, h.Post.Update)
			posts.DELETE("/:id", auth, h.Post.Delete)

			posts.POST("/:id/comments", auth, h.Post.AddComment)
			posts.GET("/:id/comments", h.Post.ListComments)
			posts.DELETE("/:id/comments/:commentId", auth, h.Post.DeleteComment)
		}

		jobs := api.Group("/jobs")
		{
			jobs.POST("", auth, middleware.RequireRoles(models.RoleRecruiter, models.RoleAdmin), h.Job.Create)
			jobs.GET("", h.Job.List)
			jobs.GET("/:id", h.Job.Get)
			jobs.PUT("/:id", auth, h.Job.Update)
			jobs.DELETE("/:id", auth, h.Job.Delete)
		}

		resources := api.Group("/resources")
		{
			resources.POST("", auth, h.Resource.Create)
			resources.GET("", h.Resource.List)
			resources.GET("/:id", h.Resource.Get)
			resources.PUT("/:id", auth, h.Resource.Update)
			resources.DELETE("/:id", auth, h.Resource.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return r
}
