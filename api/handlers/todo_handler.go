package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EliasSirvio/todo-backend-go/internal/repository"
)

// CreateTodoInput DTO for creating a new todo. The title may embed
// #tag tokens; they are stripped and turned into tag associations.
type CreateTodoInput struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Order     *int64  `json:"order"`
}

// CreateTodo creates a new todo in the database.
func (h *Handler) CreateTodo(c *gin.Context) {
	var input CreateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	completed := false
	if input.Completed != nil {
		completed = *input.Completed
	}

	todo, err := h.todos.Create(*input.Title, completed, input.Order)
	if err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.JSON(http.StatusCreated, h.renderTodo(todo))
}

// ListTodos retrieves all todos with their tags.
func (h *Handler) ListTodos(c *gin.Context) {
	todos, err := h.todos.List()
	if err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.JSON(http.StatusOK, h.renderTodos(todos))
}

// GetTodo retrieves a single todo by its ID.
func (h *Handler) GetTodo(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	todo, err := h.todos.Get(id)
	if err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.JSON(http.StatusOK, h.renderTodo(todo))
}

// UpdateTodoInput DTO for partially updating a todo
type UpdateTodoInput struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Order     *int64  `json:"order"`
}

// UpdateTodo applies a partial update; absent fields keep their value.
func (h *Handler) UpdateTodo(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	var input UpdateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		return
	}

	todo, err := h.todos.Update(id, repository.TodoPatch{
		Title:     input.Title,
		Completed: input.Completed,
		Order:     input.Order,
	})
	if err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.JSON(http.StatusOK, h.renderTodo(todo))
}

// DeleteTodo deletes a todo and its tag associations.
func (h *Handler) DeleteTodo(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	if err := h.todos.Delete(id); err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearTodos deletes all todos.
func (h *Handler) ClearTodos(c *gin.Context) {
	if err := h.todos.Clear(); err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddTodoTagInput DTO for linking an existing tag to a todo. The id
// may arrive as the string form we render or as a raw number.
type AddTodoTagInput struct {
	ID interface{} `json:"id"`
}

// AddTodoTag links an existing tag to a todo. Linking an already
// linked pair succeeds without creating a second association.
func (h *Handler) AddTodoTag(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	var input AddTodoTagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag id is required"})
		return
	}
	tagID, err := parseIDValue(input.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.todos.AddTag(id, tagID); err != nil {
		abortRepoError(c, err, "Todo or tag not found")
		return
	}

	tags, err := h.todos.ListTags(id)
	if err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.JSON(http.StatusCreated, h.renderTags(tags))
}

// ListTodoTags lists the tags linked to a todo.
func (h *Handler) ListTodoTags(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	tags, err := h.todos.ListTags(id)
	if err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.JSON(http.StatusOK, h.renderTags(tags))
}

// RemoveTodoTag unlinks one tag from a todo.
func (h *Handler) RemoveTodoTag(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	tagID, ok := parseID(c.Param("tagId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Association not found"})
		return
	}

	if err := h.todos.RemoveTag(id, tagID); err != nil {
		abortRepoError(c, err, "Association not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveAllTodoTags unlinks every tag from a todo.
func (h *Handler) RemoveAllTodoTags(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	if err := h.todos.RemoveAllTags(id); err != nil {
		abortRepoError(c, err, "Todo not found")
		return
	}

	c.Status(http.StatusNoContent)
}
