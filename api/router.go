// Package api assembles the HTTP surface of the todo backend.
package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EliasSirvio/todo-backend-go/api/handlers"
	"github.com/EliasSirvio/todo-backend-go/internal/config"
	"github.com/EliasSirvio/todo-backend-go/internal/repository"
)

// NewRouter wires repositories and handlers onto a gin engine.
// Collection endpoints use the trailing-slash convention.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	h := handlers.New(
		repository.NewTodoRepository(db, cfg.Todo.OrderSource),
		repository.NewTagRepository(db),
		cfg.Server.BaseURL,
	)

	r := gin.Default()
	r.Use(RequestID())

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	todos := r.Group("/todos")
	{
		todos.GET("/", h.ListTodos)
		todos.POST("/", h.CreateTodo)
		todos.DELETE("/", h.ClearTodos)
		todos.GET("/:id", h.GetTodo)
		todos.PATCH("/:id", h.UpdateTodo)
		todos.DELETE("/:id", h.DeleteTodo)
		todos.POST("/:id/tags/", h.AddTodoTag)
		todos.GET("/:id/tags/", h.ListTodoTags)
		todos.DELETE("/:id/tags/", h.RemoveAllTodoTags)
		todos.DELETE("/:id/tags/:tagId", h.RemoveTodoTag)
	}

	tags := r.Group("/tags")
	{
		tags.GET("/", h.ListTags)
		tags.POST("/", h.CreateTag)
		tags.DELETE("/", h.ClearTags)
		tags.GET("/:id", h.GetTag)
		tags.PATCH("/:id", h.UpdateTag)
		tags.DELETE("/:id", h.DeleteTag)
		tags.GET("/:id/todos/", h.ListTagTodos)
	}

	return r
}
