package service_test

import (
	"context"

	"todolist-be/internal/entities"
	"todolist-be/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, email, username, hashedPassword string) (*entities.User, error) {
	args := m.Called(ctx, email, username, hashedPassword)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) List(ctx context.Context, completed *bool) ([]*entities.Todo, error) {
	args := m.Called(ctx, completed)
	todos, _ := args.Get(0).([]*entities.Todo)
	return todos, args.Error(1)
}

func (m *MockTodoRepository) Search(ctx context.Context, title string) ([]*entities.Todo, error) {
	args := m.Called(ctx, title)
	todos, _ := args.Get(0).([]*entities.Todo)
	return todos, args.Error(1)
}

func (m *MockTodoRepository) Get(ctx context.Context, id string) (*entities.Todo, error) {
	args := m.Called(ctx, id)
	todo, _ := args.Get(0).(*entities.Todo)
	return todo, args.Error(1)
}

func (m *MockTodoRepository) Create(ctx context.Context, title string, description *string, completed bool) (*entities.Todo, error) {
	args := m.Called(ctx, title, description, completed)
	todo, _ := args.Get(0).(*entities.Todo)
	return todo, args.Error(1)
}

func (m *MockTodoRepository) Update(ctx context.Context, id string, patch repository.TodoPatch) (*entities.Todo, error) {
	args := m.Called(ctx, id, patch)
	todo, _ := args.Get(0).(*entities.Todo)
	return todo, args.Error(1)
}

func (m *MockTodoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
