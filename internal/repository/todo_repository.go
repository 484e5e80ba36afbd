package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"todolist-be/internal/apperrors"
	"todolist-be/internal/database"
	"todolist-be/internal/entities"
	"todolist-be/internal/optional"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TodoRepository defines the interface for todo database operations
type TodoRepository interface {
	List(ctx context.Context, completed *bool) ([]*entities.Todo, error)
	Search(ctx context.Context, title string) ([]*entities.Todo, error)
	Get(ctx context.Context, id string) (*entities.Todo, error)
	Create(ctx context.Context, title string, description *string, completed bool) (*entities.Todo, error)
	Update(ctx context.Context, id string, patch TodoPatch) (*entities.Todo, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

// TodoPatch carries the fields of a partial update. Absent fields are left
// untouched; a null description clears it.
type TodoPatch struct {
	Title       optional.Value[string]
	Description optional.Value[string]
	Completed   optional.Value[bool]
}

// IsEmpty reports whether no field was supplied.
func (p TodoPatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Description.IsSet() && !p.Completed.IsSet()
}

func (p TodoPatch) setDocument() bson.M {
	set := bson.M{}
	if title, ok := p.Title.Get(); ok {
		set["title"] = title
	}
	if p.Description.IsSet() {
		set["description"] = p.Description.Ptr()
	}
	if completed, ok := p.Completed.Get(); ok {
		set["completed"] = completed
	}
	return set
}

type todoRepository struct {
	todos *mongo.Collection
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *mongo.Database) TodoRepository {
	return &todoRepository{todos: db.Collection(database.TodosCollection)}
}

// List returns every todo, optionally restricted to one completion state.
// Order is whatever the store returns.
func (r *todoRepository) List(ctx context.Context, completed *bool) ([]*entities.Todo, error) {
	filter := bson.M{}
	if completed != nil {
		filter["completed"] = *completed
	}
	return r.find(ctx, filter)
}

// Search matches title as a literal, case-insensitive substring
func (r *todoRepository) Search(ctx context.Context, title string) ([]*entities.Todo, error) {
	return r.find(ctx, titleSearchFilter(title))
}

func titleSearchFilter(title string) bson.M {
	return bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}}
}

// Get fails with ErrInvalidID before touching the store when id is malformed
func (r *todoRepository) Get(ctx context.Context, id string) (*entities.Todo, error) {
	oid, err := entities.ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	var todo entities.Todo
	err = r.todos.FindOne(ctx, bson.M{"_id": oid}).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return &todo, nil
}

// Create inserts a new todo with createdAt == updatedAt
func (r *todoRepository) Create(ctx context.Context, title string, description *string, completed bool) (*entities.Todo, error) {
	now := entities.Now()
	todo := entities.Todo{
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := r.todos.InsertOne(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		todo.ID = oid
	}

	return &todo, nil
}

// Update applies the supplied fields and refreshes updatedAt. An empty patch
// leaves the document unmodified and returns it as stored.
func (r *todoRepository) Update(ctx context.Context, id string, patch TodoPatch) (*entities.Todo, error) {
	oid, err := entities.ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return r.Get(ctx, id)
	}

	set := patch.setDocument()
	set["updatedAt"] = entities.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var todo entities.Todo
	err = r.todos.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return &todo, nil
}

// Delete removes one todo
func (r *todoRepository) Delete(ctx context.Context, id string) error {
	oid, err := entities.ParseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.todos.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if result.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// DeleteAll empties the collection unconditionally
func (r *todoRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.todos.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete todos: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *todoRepository) find(ctx context.Context, filter bson.M) ([]*entities.Todo, error) {
	cursor, err := r.todos.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	defer cursor.Close(ctx)

	todos := make([]*entities.Todo, 0)
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode todos: %w", err)
	}
	return todos, nil
}

func notFound(id string) error {
	return apperrors.ErrTodoNotFound.WithMessage(fmt.Sprintf("Todo with id %s not found", id))
}
