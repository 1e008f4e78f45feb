package handlers

import (
	"fmt"

	"github.com/EliasSirvio/todo-backend-go/internal/models"
)

// External representations. Ids are rendered as strings, completed as
// a boolean, order as an explicit null when unset, and every resource
// carries a derived url.

type todoResource struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Completed bool          `json:"completed"`
	Order     *int64        `json:"order"`
	URL       string        `json:"url"`
	Tags      []tagResource `json:"tags"`
}

type tagResource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// tagDetail extends tagResource with the todos linked to the tag.
type tagDetail struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Todos []tagTodoRef `json:"todos"`
}

// tagTodoRef is the shape of a todo sub-object attached to a tag.
type tagTodoRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (h *Handler) todoURL(id uint) string {
	return fmt.Sprintf("%s/todos/%d", h.baseURL, id)
}

func (h *Handler) tagURL(id uint) string {
	return fmt.Sprintf("%s/tags/%d", h.baseURL, id)
}

func (h *Handler) renderTodo(t *models.Todo) todoResource {
	tags := make([]tagResource, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tags = append(tags, h.renderTag(tag))
	}
	return todoResource{
		ID:        fmt.Sprintf("%d", t.ID),
		Title:     t.Title,
		Completed: t.Completed,
		Order:     t.Order,
		URL:       h.todoURL(t.ID),
		Tags:      tags,
	}
}

func (h *Handler) renderTodos(todos []*models.Todo) []todoResource {
	out := make([]todoResource, 0, len(todos))
	for _, t := range todos {
		out = append(out, h.renderTodo(t))
	}
	return out
}

// renderTag maps the stored name field to the external title field.
func (h *Handler) renderTag(t *models.Tag) tagResource {
	return tagResource{
		ID:    fmt.Sprintf("%d", t.ID),
		Title: t.Name,
		URL:   h.tagURL(t.ID),
	}
}

func (h *Handler) renderTags(tags []*models.Tag) []tagResource {
	out := make([]tagResource, 0, len(tags))
	for _, t := range tags {
		out = append(out, h.renderTag(t))
	}
	return out
}

func (h *Handler) renderTagDetail(t *models.Tag) tagDetail {
	todos := make([]tagTodoRef, 0, len(t.Todos))
	for _, todo := range t.Todos {
		todos = append(todos, tagTodoRef{
			ID:    fmt.Sprintf("%d", todo.ID),
			Title: todo.Title,
			URL:   h.todoURL(todo.ID),
		})
	}
	return tagDetail{
		ID:    fmt.Sprintf("%d", t.ID),
		Title: t.Name,
		URL:   h.tagURL(t.ID),
		Todos: todos,
	}
}
