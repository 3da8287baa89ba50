// Package todos defines the couple-scoped to-do list entities and contracts.
package todos

import "time"

// TodoItem is a shared task owned by exactly one couple.
type TodoItem struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	CoupleID    string
	CreatedBy   string
}

// TodoWithCreator is a list row annotated with the creator's display name.
type TodoWithCreator struct {
	TodoItem
	CreatedByName string
}

// TodoInput carries the fields of a create call.
type TodoInput struct {
	Title       string
	Description string
}

// TodoUpdate carries a partial update; nil fields keep their stored value.
type TodoUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}
