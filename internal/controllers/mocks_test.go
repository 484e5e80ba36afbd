package controllers_test

import (
	"context"

	"todolist-be/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.UserResponse)
	return user, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	args := m.Called(ctx, req)
	token, _ := args.Get(0).(*models.TokenResponse)
	return token, args.Error(1)
}

type MockTodoService struct {
	mock.Mock
}

func (m *MockTodoService) ListTodos(ctx context.Context, completed *bool) ([]*models.TodoResponse, error) {
	args := m.Called(ctx, completed)
	todos, _ := args.Get(0).([]*models.TodoResponse)
	return todos, args.Error(1)
}

func (m *MockTodoService) SearchTodos(ctx context.Context, title string) ([]*models.TodoResponse, error) {
	args := m.Called(ctx, title)
	todos, _ := args.Get(0).([]*models.TodoResponse)
	return todos, args.Error(1)
}

func (m *MockTodoService) GetTodo(ctx context.Context, id string) (*models.TodoResponse, error) {
	args := m.Called(ctx, id)
	todo, _ := args.Get(0).(*models.TodoResponse)
	return todo, args.Error(1)
}

func (m *MockTodoService) CreateTodo(ctx context.Context, req *models.CreateTodoRequest) (*models.TodoResponse, error) {
	args := m.Called(ctx, req)
	todo, _ := args.Get(0).(*models.TodoResponse)
	return todo, args.Error(1)
}

func (m *MockTodoService) UpdateTodo(ctx context.Context, id string, req *models.UpdateTodoRequest) (*models.TodoResponse, error) {
	args := m.Called(ctx, id, req)
	todo, _ := args.Get(0).(*models.TodoResponse)
	return todo, args.Error(1)
}

func (m *MockTodoService) DeleteTodo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoService) DeleteAllTodos(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
