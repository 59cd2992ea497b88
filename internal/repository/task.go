package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/taskboard-go/internal/model"
)

var (
	ErrWrongID      = errors.New("wrong id")
	ErrTaskNotFound = errors.New("task not found")
)

// TaskRepository handles task persistence against the todos collection.
type TaskRepository struct {
	col *mongo.Collection
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection("todos")}
}

// Insert stores a new task and sets the generated ObjectID on the task struct.
func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) error {
	res, err := r.col.InsertOne(ctx, task)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return nil
}

// FindAll retrieves every task in the store's natural order.
func (r *TaskRepository) FindAll(ctx context.Context) ([]model.Task, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// FindByID retrieves a single task by its hex identifier.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrWrongID
	}

	task := &model.Task{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// UpdateStatus sets the status field of the task with the given identifier.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrWrongID
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes the task with the given identifier.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrWrongID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}
