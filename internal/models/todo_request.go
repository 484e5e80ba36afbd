package models

import "todolist-be/internal/optional"

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   bool    `json:"completed"`
}

// UpdateTodoRequest is a partial update. Each field distinguishes "absent"
// from "null" from a value; validation happens in the service.
type UpdateTodoRequest struct {
	Title       optional.Value[string] `json:"title"`
	Description optional.Value[string] `json:"description"`
	Completed   optional.Value[bool]   `json:"completed"`
}

// ListTodosQuery holds the optional completion filter for GET /api/todos
type ListTodosQuery struct {
	Completed *bool `form:"completed"`
}

// SearchTodosQuery holds the title query for GET /api/todos/search
type SearchTodosQuery struct {
	Title string `form:"title" binding:"required,min=1"`
}
