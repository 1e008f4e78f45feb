package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EliasSirvio/todo-backend-go/internal/models"
)

// resolveOrCreateTag returns the tag with the given name, inserting it
// first if absent. Callers must run it inside a transaction so the
// lookup and the insert cannot race against a concurrent creator of
// the same name.
func resolveOrCreateTag(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := tx.Where(&models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
		return nil, fmt.Errorf("resolve tag %q: %w", name, err)
	}
	return &tag, nil
}

// link inserts a todo-tag join row. Inserting an existing pair is a
// no-op, so linking is idempotent.
func link(tx *gorm.DB, todoID, tagID uint) error {
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.TodoTag{TodoID: todoID, TagID: tagID}).Error
	if err != nil {
		return fmt.Errorf("link todo %d to tag %d: %w", todoID, tagID, err)
	}
	return nil
}
