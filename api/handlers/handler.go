package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EliasSirvio/todo-backend-go/internal/repository"
)

// Handler bundles the repositories behind the HTTP surface. The store
// handle is owned by the caller and passed in through the repositories;
// handlers never touch ambient globals.
type Handler struct {
	todos   *repository.TodoRepository
	tags    *repository.TagRepository
	baseURL string
}

// New creates a handler set. baseURL is the public prefix used to
// derive resource URLs.
func New(todos *repository.TodoRepository, tags *repository.TagRepository, baseURL string) *Handler {
	return &Handler{todos: todos, tags: tags, baseURL: baseURL}
}

// parseID converts a path parameter to a numeric id. A value that
// cannot be an id identifies nothing, so the caller reports not-found.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseIDValue coerces an id from a JSON body, where clients may echo
// back the string ids we render or send raw numbers.
func parseIDValue(v interface{}) (uint, error) {
	switch n := v.(type) {
	case string:
		id, err := strconv.ParseUint(n, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q", n)
		}
		return uint(id), nil
	case float64:
		if n < 0 || n != float64(uint(n)) {
			return 0, fmt.Errorf("invalid id %v", n)
		}
		return uint(n), nil
	default:
		return 0, fmt.Errorf("id must be a string or a number")
	}
}

// abortRepoError translates repository sentinel errors to a status code.
func abortRepoError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, repository.ErrDuplicateName):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tag name already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store operation failed"})
	}
}
