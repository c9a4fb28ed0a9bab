package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/univc/portfolio-server/internal/model"
)

var _ model.CourseStore = (*CourseRepository)(nil)

type CourseRepository struct {
	db *Connection
}

func NewCourseRepository(db *Connection) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, name, description, period, enabled, created_at, updated_at`

func scanCourse(row pgx.Row) (model.Course, error) {
	var c model.Course
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Period, &c.Enabled, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CourseRepository) Create(ctx context.Context, course model.Course) (model.Course, error) {
	query := `INSERT INTO courses (id, name, description, period)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + courseColumns

	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}

	saved, err := scanCourse(r.db.QueryRow(ctx, query, course.ID, course.Name, course.Description, course.Period))
	if err != nil {
		return model.Course{}, fmt.Errorf("failed to create course: %w", err)
	}
	return saved, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Course{}, model.ErrNotFound
		}
		return model.Course{}, fmt.Errorf("failed to get course by id: %w", err)
	}
	return course, nil
}

func (r *CourseRepository) ListEnabled(ctx context.Context) ([]model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE enabled = TRUE ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, update model.CourseUpdate) (model.Course, error) {
	query := `UPDATE courses
			  SET name = COALESCE($2, name),
			      description = COALESCE($3, description),
			      period = COALESCE($4, period),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + courseColumns

	course, err := scanCourse(r.db.QueryRow(ctx, query, id, update.Name, update.Description, update.Period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Course{}, model.ErrNotFound
		}
		return model.Course{}, fmt.Errorf("failed to update course: %w", err)
	}
	return course, nil
}

func (r *CourseRepository) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (model.Course, error) {
	query := `UPDATE courses SET enabled = $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + courseColumns

	course, err := scanCourse(r.db.QueryRow(ctx, query, id, enabled))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Course{}, model.ErrNotFound
		}
		return model.Course{}, fmt.Errorf("failed to set course enabled: %w", err)
	}
	return course, nil
}
