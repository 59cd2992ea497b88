package handler

import (
	"context"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskboard/taskboard-go/internal/middleware"
	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
	"github.com/taskboard/taskboard-go/internal/service"
)

const testSecret = "test-secret"

// newTestServer wires fake-backed services into a router with the same
// routes main registers, and returns the stores for inspection.
func newTestServer() (*httptest.Server, *memTaskStore, *memCredStore, *memProfileStore) {
	tasks := newMemTaskStore()
	creds := newMemCredStore()
	profiles := newMemProfileStore()

	taskHandler := NewTaskHandler(service.NewTaskService(tasks))
	authHandler := NewAuthHandler(service.NewAuthService(creds, profiles, testSecret, time.Hour))
	userHandler := NewUserHandler(service.NewUserService(profiles))

	r := chi.NewRouter()
	r.Get("/todos", taskHandler.HandleList)
	r.Post("/create", taskHandler.HandleCreate)
	r.Get("/todos/{id}", taskHandler.HandleGet)
	r.Get("/todos/update/{id}/{columnId}", taskHandler.HandleUpdateStatusPath)
	r.Get("/todos/delete/{id}", taskHandler.HandleDelete)
	r.Patch("/todos/{id}/status", taskHandler.HandleUpdateStatus)
	r.Delete("/todos/{id}", taskHandler.HandleDelete)
	r.Post("/user/update/name", userHandler.HandleUpdateName)
	r.Post("/signup", authHandler.HandleSignup)
	r.Post("/login", authHandler.HandleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(testSecret))
		r.Get("/user", userHandler.HandleProfile)
	})

	return httptest.NewServer(r), tasks, creds, profiles
}

type memTaskStore struct {
	tasks map[string]model.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[string]model.Task)}
}

func (m *memTaskStore) Insert(_ context.Context, task *model.Task) error {
	task.ID = primitive.NewObjectID()
	m.tasks[task.ID.Hex()] = *task
	return nil
}

func (m *memTaskStore) FindAll(_ context.Context) ([]model.Task, error) {
	var tasks []model.Task
	for _, t := range m.tasks {
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (m *memTaskStore) FindByID(_ context.Context, id string) (*model.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrWrongID
	}
	t, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return &t, nil
}

func (m *memTaskStore) UpdateStatus(_ context.Context, id, status string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrWrongID
	}
	t, ok := m.tasks[id]
	if !ok {
		return repository.ErrTaskNotFound
	}
	t.Status = status
	m.tasks[id] = t
	return nil
}

func (m *memTaskStore) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrWrongID
	}
	if _, ok := m.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

type memCredStore struct {
	creds map[string]model.Credential
}

func newMemCredStore() *memCredStore {
	return &memCredStore{creds: make(map[string]model.Credential)}
}

func (m *memCredStore) Insert(_ context.Context, cred *model.Credential) error {
	cred.ID = primitive.NewObjectID()
	m.creds[cred.ID.Hex()] = *cred
	return nil
}

func (m *memCredStore) FindByEmail(_ context.Context, email string) (*model.Credential, error) {
	for _, c := range m.creds {
		if c.Email == email {
			cred := c
			return &cred, nil
		}
	}
	return nil, repository.ErrCredentialNotFound
}

func (m *memCredStore) Delete(_ context.Context, id string) error {
	delete(m.creds, id)
	return nil
}

type memProfileStore struct {
	profiles  map[string]model.UserProfile
	findCalls int
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[string]model.UserProfile)}
}

func (m *memProfileStore) Insert(_ context.Context, profile *model.UserProfile) error {
	profile.ID = primitive.NewObjectID()
	m.profiles[profile.ID.Hex()] = *profile
	return nil
}

func (m *memProfileStore) FindByEmail(_ context.Context, email string) ([]model.UserProfile, error) {
	m.findCalls++
	var profiles []model.UserProfile
	for _, p := range m.profiles {
		if p.Email == email {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

func (m *memProfileStore) UpdateName(_ context.Context, id, name string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrWrongID
	}
	p, ok := m.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.Name = name
	m.profiles[id] = p
	return nil
}
