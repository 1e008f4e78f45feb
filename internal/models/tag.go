package models

import "time"

// Tag represents a tag in the system. Names are globally unique;
// repositories reuse an existing row instead of inserting a duplicate.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_tags_name"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Many-to-Many Relations
	Todos []*Todo `json:"todos,omitempty" gorm:"many2many:todo_tags"`
}
