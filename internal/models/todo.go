package models

import "time"

// Todo represents a todo item in the system
type Todo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	Order     *int64    `json:"order" gorm:"column:order"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Many-to-Many Relations
	Tags []*Tag `json:"tags,omitempty" gorm:"many2many:todo_tags"`
}

// TodoTag is the join row linking one Todo to one Tag.
// The composite primary key keeps the link idempotent: a pair
// can exist at most once.
type TodoTag struct {
	TodoID uint `json:"todo_id" gorm:"primaryKey"`
	TagID  uint `json:"tag_id" gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (TodoTag) TableName() string {
	return "todo_tags"
}
