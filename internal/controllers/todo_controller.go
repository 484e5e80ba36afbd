package controllers

import (
	"net/http"

	"todolist-be/internal/models"
	"todolist-be/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoController struct {
	todoService service.TodoService
}

func NewTodoController(todoService service.TodoService) *TodoController {
	return &TodoController{
		todoService: todoService,
	}
}

// ListTodos handles GET /api/todos?completed=
func (tc *TodoController) ListTodos(c *gin.Context) {
	// gin binds an empty value to false; "completed=" is not a boolean
	if value, ok := c.GetQuery("completed"); ok && value == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": "completed must be true or false",
		})
		return
	}

	var query models.ListTodosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	todos, err := tc.todoService.ListTodos(c.Request.Context(), query.Completed)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// SearchTodos handles GET /api/todos/search?title=
func (tc *TodoController) SearchTodos(c *gin.Context) {
	var query models.SearchTodosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Query parameter 'title' is required",
			"details": err.Error(),
		})
		return
	}

	todos, err := tc.todoService.SearchTodos(c.Request.Context(), query.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// GetTodo handles GET /api/todos/:id
func (tc *TodoController) GetTodo(c *gin.Context) {
	todo, err := tc.todoService.GetTodo(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// CreateTodo handles POST /api/todos
func (tc *TodoController) CreateTodo(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	todo, err := tc.todoService.CreateTodo(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo handles PUT /api/todos/:id with a partial body
func (tc *TodoController) UpdateTodo(c *gin.Context) {
	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	todo, err := tc.todoService.UpdateTodo(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo handles DELETE /api/todos/:id
func (tc *TodoController) DeleteTodo(c *gin.Context) {
	if err := tc.todoService.DeleteTodo(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllTodos handles DELETE /api/todos. It is unauthenticated.
func (tc *TodoController) DeleteAllTodos(c *gin.Context) {
	if err := tc.todoService.DeleteAllTodos(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
