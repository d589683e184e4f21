package postgres

import (
	"context"
	"errors"

	"github.com/coursehub/coursehub-backend/internal/models"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type coursesRepo struct{ pool *pgxpool.Pool }

const courseCols = `c.id, c.title, c.description, c.estimated_time, c.materials_needed,
       c.owner_id, c.created_at, c.updated_at,
       u.first_name, u.last_name, u.email`

func scanCourse(row pgx.Row) (models.Course, error) {
	var c models.Course
	var owner models.UserPublic
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.EstimatedTime, &c.MaterialsNeeded,
		&c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
		&owner.FirstName, &owner.LastName, &owner.EmailAddress)
	if err != nil {
		return models.Course{}, err
	}
	c.Owner = &owner
	return c, nil
}

func (r *coursesRepo) Create(c models.Course) (models.Course, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO courses(id, title, description, estimated_time, materials_needed, owner_id)
		 VALUES($1,$2,$3,$4,$5,$6)`,
		c.ID, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.OwnerID,
	)
	if err != nil {
		return models.Course{}, err
	}
	return r.GetByID(c.ID)
}

func (r *coursesRepo) GetByID(id string) (models.Course, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+courseCols+`
		   FROM courses c
		   JOIN users u ON u.id = c.owner_id
		  WHERE c.id=$1`, id)
	c, err := scanCourse(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Course{}, repository.ErrNotFound
	}
	return c, err
}

func (r *coursesRepo) List() ([]models.Course, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+courseCols+`
		   FROM courses c
		   JOIN users u ON u.id = c.owner_id
		  ORDER BY c.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *coursesRepo) Update(c models.Course) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE courses
		    SET title=$2, description=$3, estimated_time=$4, materials_needed=$5, updated_at=now()
		  WHERE id=$1`,
		c.ID, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded,
	)
	return err
}

func (r *coursesRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM courses WHERE id=$1`, id)
	return err
}
