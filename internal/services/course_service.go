package services

import (
	"github.com/coursehub/coursehub-backend/internal/metrics"
	"github.com/coursehub/coursehub-backend/internal/models"
	repo "github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/coursehub/coursehub-backend/internal/worker"
)

type CourseService struct {
	r   repo.Courses
	log repo.AuditLogs
	wp  *worker.Pool
}

func NewCourseService(r repo.Courses, log repo.AuditLogs, wp *worker.Pool) *CourseService {
	return &CourseService{r: r, log: log, wp: wp}
}

func (s *CourseService) audit(courseID, action string, actor models.User) {
	id := courseID
	s.wp.Submit(func() {
		_ = s.log.Create(models.AuditLog{
			EntityType: "course",
			EntityID:   &id,
			Action:     action,
			Details:    map[string]any{"actor": actor.ID},
		})
	})
}

func (s *CourseService) List() ([]models.Course, error) { return s.r.List() }

func (s *CourseService) Get(id string) (models.Course, error) { return s.r.GetByID(id) }

// Create stores a new course owned by the acting user. A client-supplied
// owner id is ignored: the creator is always the owner.
func (s *CourseService) Create(actor models.User, c models.Course) (models.Course, error) {
	c.OwnerID = actor.ID
	if errs := c.Validate(); len(errs) > 0 {
		return models.Course{}, errs
	}
	created, err := s.r.Create(c)
	if err != nil {
		return models.Course{}, err
	}
	metrics.CourseMutationsTotal.WithLabelValues("create").Inc()
	s.audit(created.ID, "created", actor)
	return created, nil
}

// Update replaces a course's fields. The existence check runs before the
// ownership check, so a missing id reports not-found even to a caller who
// would also have been forbidden.
func (s *CourseService) Update(actor models.User, id string, in models.Course) error {
	cur, err := s.r.GetByID(id)
	if err != nil {
		return err
	}
	if cur.OwnerID != actor.ID {
		return ErrForbidden
	}
	cur.Title = in.Title
	cur.Description = in.Description
	cur.EstimatedTime = in.EstimatedTime
	cur.MaterialsNeeded = in.MaterialsNeeded
	if errs := cur.Validate(); len(errs) > 0 {
		return errs
	}
	if err := s.r.Update(cur); err != nil {
		return err
	}
	metrics.CourseMutationsTotal.WithLabelValues("update").Inc()
	s.audit(id, "updated", actor)
	return nil
}

func (s *CourseService) Delete(actor models.User, id string) error {
	cur, err := s.r.GetByID(id)
	if err != nil {
		return err
	}
	if cur.OwnerID != actor.ID {
		return ErrForbidden
	}
	if err := s.r.Delete(id); err != nil {
		return err
	}
	metrics.CourseMutationsTotal.WithLabelValues("delete").Inc()
	s.audit(id, "deleted", actor)
	return nil
}
