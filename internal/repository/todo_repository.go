package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliasSirvio/todo-backend-go/internal/config"
	"github.com/EliasSirvio/todo-backend-go/internal/hashtag"
	"github.com/EliasSirvio/todo-backend-go/internal/models"
)

// TodoPatch carries the fields of a partial update. Nil fields keep
// their prior value.
type TodoPatch struct {
	Title     *string
	Completed *bool
	Order     *int64
}

// TodoRepository performs CRUD on todos and their tag associations.
type TodoRepository struct {
	db          *gorm.DB
	orderSource string
}

// NewTodoRepository creates a todo repository on the shared handle.
// orderSource is one of config.OrderFromClient or config.OrderFromServer.
func NewTodoRepository(db *gorm.DB, orderSource string) *TodoRepository {
	return &TodoRepository{db: db, orderSource: orderSource}
}

// List returns all todos with their tags, in insertion order.
func (r *TodoRepository) List() ([]*models.Todo, error) {
	var todos []*models.Todo
	if err := r.db.Preload("Tags").Order("id").Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Get returns one todo with its tags, or ErrNotFound.
func (r *TodoRepository) Get(id uint) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.Preload("Tags").First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get todo %d: %w", id, err)
	}
	return &todo, nil
}

// Create inserts a todo. Hashtag tokens embedded in the title are
// stripped; each referenced tag is resolved or created and linked to
// the new todo. The whole sequence runs in one transaction.
func (r *TodoRepository) Create(title string, completed bool, order *int64) (*models.Todo, error) {
	clean, names := hashtag.Extract(title)
	todo := &models.Todo{Title: clean, Completed: completed, Order: order}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if todo.Order == nil && r.orderSource == config.OrderFromServer {
			next, err := nextOrder(tx)
			if err != nil {
				return err
			}
			todo.Order = &next
		}
		if err := tx.Create(todo).Error; err != nil {
			return fmt.Errorf("insert todo: %w", err)
		}
		return linkNames(tx, todo.ID, names)
	})
	if err != nil {
		return nil, err
	}
	return r.Get(todo.ID)
}

// Update applies a partial update, or ErrNotFound. A supplied title is
// re-scanned for hashtags; newly referenced tags are linked.
func (r *TodoRepository) Update(id uint, patch TodoPatch) (*models.Todo, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var todo models.Todo
		if err := tx.First(&todo, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load todo %d: %w", id, err)
		}

		if patch.Title != nil {
			clean, names := hashtag.Extract(*patch.Title)
			todo.Title = clean
			if err := linkNames(tx, todo.ID, names); err != nil {
				return err
			}
		}
		if patch.Completed != nil {
			todo.Completed = *patch.Completed
		}
		if patch.Order != nil {
			todo.Order = patch.Order
		}

		if err := tx.Save(&todo).Error; err != nil {
			return fmt.Errorf("update todo %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes a todo and its join rows, or ErrNotFound.
func (r *TodoRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&models.TodoTag{}).Error; err != nil {
			return fmt.Errorf("delete todo %d associations: %w", id, err)
		}
		res := tx.Delete(&models.Todo{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete todo %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Clear removes every todo together with all join rows.
func (r *TodoRepository) Clear() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TodoTag{}).Error; err != nil {
			return fmt.Errorf("clear associations: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Todo{}).Error; err != nil {
			return fmt.Errorf("clear todos: %w", err)
		}
		return nil
	})
}

// AddTag links an existing tag to an existing todo. Linking the same
// pair twice is a no-op. Either side missing yields ErrNotFound.
func (r *TodoRepository) AddTag(todoID, tagID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Todo{}, todoID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Tag{}, tagID); err != nil {
			return err
		}
		return link(tx, todoID, tagID)
	})
}

// ListTags returns the tags linked to a todo, or ErrNotFound when the
// todo is absent.
func (r *TodoRepository) ListTags(todoID uint) ([]*models.Tag, error) {
	todo, err := r.Get(todoID)
	if err != nil {
		return nil, err
	}
	return todo.Tags, nil
}

// RemoveTag unlinks one tag from a todo. A missing association yields
// ErrNotFound.
func (r *TodoRepository) RemoveTag(todoID, tagID uint) error {
	res := r.db.Where("todo_id = ? AND tag_id = ?", todoID, tagID).
		Delete(&models.TodoTag{})
	if res.Error != nil {
		return fmt.Errorf("unlink todo %d from tag %d: %w", todoID, tagID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveAllTags unlinks every tag from a todo, or ErrNotFound when the
// todo is absent.
func (r *TodoRepository) RemoveAllTags(todoID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Todo{}, todoID); err != nil {
			return err
		}
		if err := tx.Where("todo_id = ?", todoID).Delete(&models.TodoTag{}).Error; err != nil {
			return fmt.Errorf("unlink tags of todo %d: %w", todoID, err)
		}
		return nil
	})
}

// linkNames resolves each tag name and links it to the todo.
func linkNames(tx *gorm.DB, todoID uint, names []string) error {
	for _, name := range names {
		tag, err := resolveOrCreateTag(tx, name)
		if err != nil {
			return err
		}
		if err := link(tx, todoID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

// requireRow maps a missing primary key to ErrNotFound.
func requireRow(tx *gorm.DB, model interface{}, id uint) error {
	if err := tx.Select("id").First(model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// nextOrder returns max(order)+1 across all todos, starting at 1.
func nextOrder(tx *gorm.DB) (int64, error) {
	var next int64
	row := tx.Model(&models.Todo{}).
		Select(`COALESCE(MAX("order"), 0) + 1`).
		Row()
	if err := row.Scan(&next); err != nil {
		return 0, fmt.Errorf("next order: %w", err)
	}
	return next, nil
}
