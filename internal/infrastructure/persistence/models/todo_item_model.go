package models

import (
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/todos"
)

// TodoItemModel is the GORM database model for to-do items (infrastructure concern)
type TodoItemModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	CoupleID    string    `gorm:"not null;index;type:uuid"`
	CreatedBy   string    `gorm:"not null;type:uuid"`
}

// TableName specifies the table name for GORM
func (TodoItemModel) TableName() string {
	return "todo_items"
}

// ToDomain converts GORM model to domain entity
func (m *TodoItemModel) ToDomain() *todos.TodoItem {
	return &todos.TodoItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Completed:   m.Completed,
		CreatedAt:   m.CreatedAt,
		CoupleID:    m.CoupleID,
		CreatedBy:   m.CreatedBy,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TodoItemModel) FromDomain(t *todos.TodoItem) {
	m.ID = t.ID
	m.Title = t.Title
	m.Description = t.Description
	m.Completed = t.Completed
	m.CreatedAt = t.CreatedAt
	m.CoupleID = t.CoupleID
	m.CreatedBy = t.CreatedBy
}
