package routes_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"todolist-be/internal/apperrors"
	"todolist-be/internal/entities"
	"todolist-be/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// clock advances one second per reading so updates are strictly later than
// creation.
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type memoryUsers struct {
	clock *clock
	users []*entities.User
}

func (r *memoryUsers) Create(_ context.Context, email, username, hashedPassword string) (*entities.User, error) {
	now := r.clock.now()
	user := &entities.User{ID: primitive.NewObjectID(), Email: email, Username: username, HashedPassword: hashedPassword, CreatedAt: now, UpdatedAt: now}
	r.users = append(r.users, user)
	return user, nil
}

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUsers) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

type memoryTodos struct {
	clock *clock
	todos map[primitive.ObjectID]*entities.Todo
}

func newMemoryTodos(c *clock) *memoryTodos {
	return &memoryTodos{clock: c, todos: map[primitive.ObjectID]*entities.Todo{}}
}

func (r *memoryTodos) sorted(keep func(*entities.Todo) bool) []*entities.Todo {
	out := []*entities.Todo{}
	for _, todo := range r.todos {
		if keep(todo) {
			cp := *todo
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r *memoryTodos) List(_ context.Context, completed *bool) ([]*entities.Todo, error) {
	return r.sorted(func(t *entities.Todo) bool {
		return completed == nil || t.Completed == *completed
	}), nil
}

func (r *memoryTodos) Search(_ context.Context, title string) ([]*entities.Todo, error) {
	needle := strings.ToLower(title)
	return r.sorted(func(t *entities.Todo) bool {
		return strings.Contains(strings.ToLower(t.Title), needle)
	}), nil
}

func (r *memoryTodos) lookup(id string) (*entities.Todo, error) {
	oid, err := entities.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	todo, ok := r.todos[oid]
	if !ok {
		return nil, apperrors.ErrTodoNotFound.WithMessage(fmt.Sprintf("Todo with id %s not found", id))
	}
	return todo, nil
}

func (r *memoryTodos) Get(_ context.Context, id string) (*entities.Todo, error) {
	todo, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	cp := *todo
	return &cp, nil
}

func (r *memoryTodos) Create(_ context.Context, title string, description *string, completed bool) (*entities.Todo, error) {
	now := r.clock.now()
	todo := &entities.Todo{ID: primitive.NewObjectID(), Title: title, Description: description, Completed: completed, CreatedAt: now, UpdatedAt: now}
	r.todos[todo.ID] = todo
	cp := *todo
	return &cp, nil
}

func (r *memoryTodos) Update(ctx context.Context, id string, patch repository.TodoPatch) (*entities.Todo, error) {
	todo, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return r.Get(ctx, id)
	}
	if title, ok := patch.Title.Get(); ok {
		todo.Title = title
	}
	if patch.Description.IsSet() {
		todo.Description = patch.Description.Ptr()
	}
	if completed, ok := patch.Completed.Get(); ok {
		todo.Completed = completed
	}
	todo.UpdatedAt = r.clock.now()
	cp := *todo
	return &cp, nil
}

func (r *memoryTodos) Delete(_ context.Context, id string) error {
	todo, err := r.lookup(id)
	if err != nil {
		return err
	}
	delete(r.todos, todo.ID)
	return nil
}

func (r *memoryTodos) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.todos))
	r.todos = map[primitive.ObjectID]*entities.Todo{}
	return n, nil
}
