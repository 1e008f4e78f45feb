package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliasSirvio/todo-backend-go/internal/models"
)

// TagRepository performs CRUD on tags and reverse lookups of the todos
// linked to them.
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a tag repository on the shared handle.
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List returns all tags in insertion order.
func (r *TagRepository) List() ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := r.db.Order("id").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// Get returns one tag with its linked todos, or ErrNotFound.
func (r *TagRepository) Get(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Preload("Todos").First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tag %d: %w", id, err)
	}
	return &tag, nil
}

// Create inserts a new tag. A duplicate name surfaces as
// ErrDuplicateName; deduplication on insert is deliberately left to
// the todo repository's tag resolution.
func (r *TagRepository) Create(name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name}
	if err := r.db.Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("insert tag %q: %w", name, err)
	}
	return tag, nil
}

// Update renames a tag, or ErrNotFound. Renaming to a name already in
// use surfaces as ErrDuplicateName.
func (r *TagRepository) Update(id uint, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("load tag %d: %w", id, err)
		}
		tag.Name = name
		if err := tx.Save(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateName
			}
			return fmt.Errorf("rename tag %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes a tag and its join rows, or ErrNotFound.
func (r *TagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.TodoTag{}).Error; err != nil {
			return fmt.Errorf("delete tag %d associations: %w", id, err)
		}
		res := tx.Delete(&models.Tag{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete tag %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Clear removes every tag together with all join rows.
func (r *TagRepository) Clear() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TodoTag{}).Error; err != nil {
			return fmt.Errorf("clear associations: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Tag{}).Error; err != nil {
			return fmt.Errorf("clear tags: %w", err)
		}
		return nil
	})
}

// ListTodos returns the todos linked to a tag, each with its own tags
// resolved, or ErrNotFound when the tag is absent.
func (r *TagRepository) ListTodos(tagID uint) ([]*models.Todo, error) {
	var tag models.Tag
	if err := r.db.Preload("Todos.Tags").First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("list todos of tag %d: %w", tagID, err)
	}
	return tag.Todos, nil
}
