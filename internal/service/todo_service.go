package service

import (
	"context"

	"todolist-be/internal/apperrors"
	"todolist-be/internal/entities"
	"todolist-be/internal/models"
	"todolist-be/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// TodoService defines the interface for todo business logic
type TodoService interface {
	ListTodos(ctx context.Context, completed *bool) ([]*models.TodoResponse, error)
	SearchTodos(ctx context.Context, title string) ([]*models.TodoResponse, error)
	GetTodo(ctx context.Context, id string) (*models.TodoResponse, error)
	CreateTodo(ctx context.Context, req *models.CreateTodoRequest) (*models.TodoResponse, error)
	UpdateTodo(ctx context.Context, id string, req *models.UpdateTodoRequest) (*models.TodoResponse, error)
	DeleteTodo(ctx context.Context, id string) error
	DeleteAllTodos(ctx context.Context) error
}

type todoService struct {
	repo     repository.TodoRepository
	validate *validator.Validate
}

// NewTodoService creates a new todo service
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListTodos retrieves all todos, optionally filtered by completion
func (s *todoService) ListTodos(ctx context.Context, completed *bool) ([]*models.TodoResponse, error) {
	todos, err := s.repo.List(ctx, completed)
	if err != nil {
		return nil, err
	}
	return toTodoResponses(todos), nil
}

// SearchTodos finds todos whose title contains the query, ignoring case
func (s *todoService) SearchTodos(ctx context.Context, title string) ([]*models.TodoResponse, error) {
	if title == "" {
		return nil, apperrors.Validation("title query must not be empty")
	}

	todos, err := s.repo.Search(ctx, title)
	if err != nil {
		return nil, err
	}
	return toTodoResponses(todos), nil
}

func (s *todoService) GetTodo(ctx context.Context, id string) (*models.TodoResponse, error) {
	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTodoResponse(todo), nil
}

func (s *todoService) CreateTodo(ctx context.Context, req *models.CreateTodoRequest) (*models.TodoResponse, error) {
	if err := s.validate.Var(req.Title, "min=1,max=200"); err != nil {
		return nil, apperrors.Validation("title must be between 1 and 200 characters")
	}
	if req.Description != nil {
		if err := s.validate.Var(*req.Description, "max=1000"); err != nil {
			return nil, apperrors.Validation("description must be at most 1000 characters")
		}
	}

	todo, err := s.repo.Create(ctx, req.Title, req.Description, req.Completed)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("todo_id", todo.ID.Hex()).Msg("Todo created")
	return ToTodoResponse(todo), nil
}

// UpdateTodo applies only the fields present in req. Title and completed
// cannot be nulled; a null description clears it.
func (s *todoService) UpdateTodo(ctx context.Context, id string, req *models.UpdateTodoRequest) (*models.TodoResponse, error) {
	if req.Title.IsSet() {
		title, ok := req.Title.Get()
		if !ok {
			return nil, apperrors.Validation("title cannot be null")
		}
		if err := s.validate.Var(title, "min=1,max=200"); err != nil {
			return nil, apperrors.Validation("title must be between 1 and 200 characters")
		}
	}
	if description, ok := req.Description.Get(); ok {
		if err := s.validate.Var(description, "max=1000"); err != nil {
			return nil, apperrors.Validation("description must be at most 1000 characters")
		}
	}
	if req.Completed.IsNull() {
		return nil, apperrors.Validation("completed cannot be null")
	}

	todo, err := s.repo.Update(ctx, id, repository.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return nil, err
	}
	return ToTodoResponse(todo), nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DeleteAllTodos empties the collection. There is no authorization gate.
func (s *todoService) DeleteAllTodos(ctx context.Context) error {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return err
	}
	log.Warn().Int64("deleted", deleted).Msg("All todos deleted")
	return nil
}

// ToTodoResponse converts a stored todo to its API shape
func ToTodoResponse(todo *entities.Todo) *models.TodoResponse {
	return &models.TodoResponse{
		ID:          todo.ID.Hex(),
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

func toTodoResponses(todos []*entities.Todo) []*models.TodoResponse {
	responses := make([]*models.TodoResponse, len(todos))
	for i, todo := range todos {
		responses[i] = ToTodoResponse(todo)
	}
	return responses
}
