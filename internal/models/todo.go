package models

import "time"

// Todo is a single task owned by one user. The owner is resolved from the
// auth token on every request and is never part of the JSON payload.
type Todo struct {
	ID          string    `json:"id"`
	UserID      int       `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
