package http

import (
	"github.com/gin-gonic/gin"

	"github.com/go-to-sky/onelife/internal/adapter/http/handlers"
	"github.com/go-to-sky/onelife/internal/adapter/http/middleware"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Task     *handlers.TaskHandler
	Exhibit  *handlers.ExhibitHandler
	Category *handlers.CategoryHandler
	Comment  *handlers.CommentHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.IdentityMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/tasks", h.Task.CreateTask)
		api.GET("/tasks", h.Task.ListTasks)
		api.GET("/tasks/range", h.Task.ListTaskRange)
		api.GET("/tasks/statistics", h.Task.GetStatistics)
		api.POST("/tasks/:id/toggle", h.Task.ToggleTaskStatus)
		api.DELETE("/tasks/:id", h.Task.DeleteTask)

		api.GET("/exhibits", h.Exhibit.ListExhibits)
		api.GET("/exhibits/:slug", h.Exhibit.GetExhibit)
		api.POST("/exhibits", h.Exhibit.CreateExhibit)
		api.PATCH("/exhibits/:id", h.Exhibit.UpdateExhibit)
		api.DELETE("/exhibits/:id", h.Exhibit.DeleteExhibit)

		api.GET("/categories", h.Category.ListCategories)
		api.POST("/categories", h.Category.CreateCategory)
		api.PATCH("/categories/:id", h.Category.UpdateCategory)
		api.DELETE("/categories/:id", h.Category.DeleteCategory)

		api.GET("/comments", h.Comment.ListComments)
		api.POST("/comments", h.Comment.CreateComment)
		api.DELETE("/comments/:id", h.Comment.DeleteComment)
	}
}
