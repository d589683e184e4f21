package services

import (
	"errors"
	"strings"

	"github.com/coursehub/coursehub-backend/internal/api/validate"
	"github.com/coursehub/coursehub-backend/internal/auth"
	"github.com/coursehub/coursehub-backend/internal/metrics"
	"github.com/coursehub/coursehub-backend/internal/models"
	repo "github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/coursehub/coursehub-backend/internal/worker"
)

type UserService struct {
	r   repo.Users
	log repo.AuditLogs
	wp  *worker.Pool
}

func NewUserService(r repo.Users, log repo.AuditLogs, wp *worker.Pool) *UserService {
	return &UserService{r: r, log: log, wp: wp}
}

// Register creates a user. All field violations are collected and returned
// together as a validate.Errs; the password is hashed before anything is
// stored and the plaintext goes no further than this call.
func (s *UserService) Register(firstName, lastName, email, password string) (models.User, error) {
	u := models.User{
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		EmailAddress: strings.TrimSpace(email),
	}
	errs := u.Validate()
	errs = errs.Append(validate.Required("password", password))
	if len(errs) > 0 {
		return models.User{}, errs
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	created, err := s.r.Create(u.FirstName, u.LastName, u.EmailAddress, hash)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return models.User{}, validate.Errs{{Field: "emailAddress", Msg: "is already in use"}}
	}
	if err != nil {
		return models.User{}, err
	}

	metrics.RegistrationsTotal.Inc()
	id := created.ID
	s.wp.Submit(func() {
		_ = s.log.Create(models.AuditLog{
			EntityType: "user",
			EntityID:   &id,
			Action:     "registered",
			Details:    map[string]any{"emailAddress": created.EmailAddress},
		})
	})
	return created, nil
}
