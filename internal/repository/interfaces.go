package repository

import (
	"errors"

	"github.com/coursehub/coursehub-backend/internal/models"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned by Users.Create when the email address
// is already taken.
var ErrDuplicateEmail = errors.New("email address already in use")

type Users interface {
	Create(firstName, lastName, email, passwordHash string) (models.User, error)
	GetByID(id string) (models.User, error)
	GetByEmail(email string) (models.User, error)
}

type Courses interface {
	Create(c models.Course) (models.Course, error)
	GetByID(id string) (models.Course, error)
	List() ([]models.Course, error)
	Update(c models.Course) error
	Delete(id string) error
}

type AuditLogs interface {
	Create(l models.AuditLog) error
}
