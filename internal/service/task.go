package service

import (
	"context"
	"errors"
	"time"

	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

var (
	ErrWrongID      = errors.New("wrong id")
	ErrTaskNotFound = errors.New("task not found")
)

// TaskStore persists board tasks.
type TaskStore interface {
	Insert(ctx context.Context, task *model.Task) error
	FindAll(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// TaskService handles task business logic.
type TaskService struct {
	store TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

// Create inserts a new task stamped with the current UTC time and returns
// its generated identifier. Title and status are stored as submitted; an
// absent image defaults to the empty string.
func (s *TaskService) Create(ctx context.Context, req model.CreateTaskRequest) (string, error) {
	task := &model.Task{
		Title:     req.Title,
		Status:    req.Status,
		CreatedAt: time.Now().UTC(),
		Image:     req.Image,
	}

	if err := s.store.Insert(ctx, task); err != nil {
		return "", err
	}

	return task.ID.Hex(), nil
}

// List returns every task on the board in the store's natural order.
func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Get retrieves a single task by id.
func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapTaskStoreErr(err)
	}
	return task, nil
}

// UpdateStatus moves a task to a new board column, unconditionally.
func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) error {
	return mapTaskStoreErr(s.store.UpdateStatus(ctx, id, status))
}

// Delete removes a task by id.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return mapTaskStoreErr(s.store.Delete(ctx, id))
}

func mapTaskStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrWrongID):
		return ErrWrongID
	case errors.Is(err, repository.ErrTaskNotFound):
		return ErrTaskNotFound
	default:
		return err
	}
}
