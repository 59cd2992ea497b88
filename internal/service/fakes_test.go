package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taskboard/taskboard-go/internal/model"
	"github.com/taskboard/taskboard-go/internal/repository"
)

// In-memory stores mirroring the Mongo repositories' contracts, including
// their sentinel errors and hex-id validation.

type fakeTaskStore struct {
	tasks map[string]model.Task
	order []string
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]model.Task)}
}

func (f *fakeTaskStore) Insert(_ context.Context, task *model.Task) error {
	task.ID = primitive.NewObjectID()
	f.tasks[task.ID.Hex()] = *task
	f.order = append(f.order, task.ID.Hex())
	return nil
}

func (f *fakeTaskStore) FindAll(_ context.Context) ([]model.Task, error) {
	var tasks []model.Task
	for _, id := range f.order {
		if t, ok := f.tasks[id]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (f *fakeTaskStore) FindByID(_ context.Context, id string) (*model.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrWrongID
	}
	t, ok := f.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return &t, nil
}

func (f *fakeTaskStore) UpdateStatus(_ context.Context, id, status string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrWrongID
	}
	t, ok := f.tasks[id]
	if !ok {
		return repository.ErrTaskNotFound
	}
	t.Status = status
	f.tasks[id] = t
	return nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrWrongID
	}
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

type fakeCredentialStore struct {
	creds      map[string]model.Credential // keyed by hex id
	insertErr  error
	deleteCall int
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{creds: make(map[string]model.Credential)}
}

func (f *fakeCredentialStore) Insert(_ context.Context, cred *model.Credential) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	cred.ID = primitive.NewObjectID()
	f.creds[cred.ID.Hex()] = *cred
	return nil
}

func (f *fakeCredentialStore) FindByEmail(_ context.Context, email string) (*model.Credential, error) {
	for _, c := range f.creds {
		if c.Email == email {
			cred := c
			return &cred, nil
		}
	}
	return nil, repository.ErrCredentialNotFound
}

func (f *fakeCredentialStore) Delete(_ context.Context, id string) error {
	f.deleteCall++
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrWrongID
	}
	delete(f.creds, id)
	return nil
}

type fakeProfileStore struct {
	profiles  map[string]model.UserProfile
	insertErr error
	findCalls int
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]model.UserProfile)}
}

func (f *fakeProfileStore) Insert(_ context.Context, profile *model.UserProfile) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	profile.ID = primitive.NewObjectID()
	f.profiles[profile.ID.Hex()] = *profile
	return nil
}

func (f *fakeProfileStore) FindByEmail(_ context.Context, email string) ([]model.UserProfile, error) {
	f.findCalls++
	var profiles []model.UserProfile
	for _, p := range f.profiles {
		if p.Email == email {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

func (f *fakeProfileStore) UpdateName(_ context.Context, id, name string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrWrongID
	}
	p, ok := f.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.Name = name
	f.profiles[id] = p
	return nil
}

var errStoreDown = errors.New("store unreachable")
