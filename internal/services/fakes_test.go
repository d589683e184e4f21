package services

import (
	"strings"
	"sync"

	"github.com/coursehub/coursehub-backend/internal/models"
	repo "github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/google/uuid"
)

// --- in-memory fakes ---

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]models.User // by id
}

func newFakeUsers() *fakeUsers { return &fakeUsers{users: map[string]models.User{}} }

func (f *fakeUsers) Create(firstName, lastName, email, hash string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.EmailAddress == email {
			return models.User{}, repo.ErrDuplicateEmail
		}
	}
	u := models.User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: email,
		PasswordHash: hash,
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		// exact, case-sensitive match on purpose
		if u.EmailAddress == email {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

type fakeCourses struct {
	mu      sync.Mutex
	courses map[string]models.Course
}

func newFakeCourses() *fakeCourses { return &fakeCourses{courses: map[string]models.Course{}} }

func (f *fakeCourses) Create(c models.Course) (models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.courses[c.ID] = c
	return c, nil
}

func (f *fakeCourses) GetByID(id string) (models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.courses[id]
	if !ok {
		return models.Course{}, repo.ErrNotFound
	}
	return c, nil
}

func (f *fakeCourses) List() ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourses) Update(c models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.courses[c.ID]; !ok {
		return repo.ErrNotFound
	}
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCourses) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.courses, id)
	return nil
}

type fakeAuditLogs struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (f *fakeAuditLogs) Create(l models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, l)
	return nil
}

func (f *fakeAuditLogs) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.EntityType+":"+e.Action)
	}
	return out
}

func (f *fakeAuditLogs) has(action string) bool {
	return strings.Contains(strings.Join(f.actions(), ","), action)
}
