package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TagInput DTO for creating or renaming a tag
type TagInput struct {
	Title *string `json:"title"`
}

// CreateTag creates a new tag in the database.
func (h *Handler) CreateTag(c *gin.Context) {
	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	tag, err := h.tags.Create(*input.Title)
	if err != nil {
		abortRepoError(c, err, "Tag not found")
		return
	}

	c.JSON(http.StatusCreated, h.renderTag(tag))
}

// ListTags retrieves all tags.
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.tags.List()
	if err != nil {
		abortRepoError(c, err, "Tag not found")
		return
	}

	c.JSON(http.StatusOK, h.renderTags(tags))
}

// GetTag retrieves a single tag with the todos linked to it.
func (h *Handler) GetTag(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	tag, err := h.tags.Get(id)
	if err != nil {
		abortRepoError(c, err, "Tag not found")
		return
	}

	c.JSON(http.StatusOK, h.renderTagDetail(tag))
}

// UpdateTag renames a tag.
func (h *Handler) UpdateTag(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	tag, err := h.tags.Update(id, *input.Title)
	if err != nil {
		abortRepoError(c, err, "Tag not found")
		return
	}

	c.JSON(http.StatusOK, h.renderTag(tag))
}

// DeleteTag deletes a tag and removes it from every todo.
func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	if err := h.tags.Delete(id); err != nil {
		abortRepoError(c, err, "Tag not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearTags deletes all tags.
func (h *Handler) ClearTags(c *gin.Context) {
	if err := h.tags.Clear(); err != nil {
		abortRepoError(c, err, "Tag not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTagTodos lists the todos linked to a tag.
func (h *Handler) ListTagTodos(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	todos, err := h.tags.ListTodos(id)
	if err != nil {
		abortRepoError(c, err, "Tag not found")
		return
	}

	c.JSON(http.StatusOK, h.renderTodos(todos))
}
