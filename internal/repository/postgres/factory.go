package postgres

import (
	repo "github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users     repo.Users
	Courses   repo.Courses
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Courses:   &coursesRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
