package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/univc/portfolio-server/internal/model"
)

var _ model.ProjectStore = (*ProjectRepository)(nil)

type ProjectRepository struct {
	db *Connection
}

func NewProjectRepository(db *Connection) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, user_id, title, description, body, image_url, tags, enabled, created_at, updated_at`

func scanProject(row pgx.Row) (model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Body,
		&p.ImageURL, &p.Tags, &p.Enabled, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProjectRepository) Create(ctx context.Context, project model.Project) (model.Project, error) {
	query := `INSERT INTO projects (id, user_id, title, description, body, image_url, tags)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + projectColumns

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}

	saved, err := scanProject(r.db.QueryRow(ctx, query,
		project.ID, project.UserID, project.Title, project.Description,
		project.Body, project.ImageURL, project.Tags))
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return saved, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, model.ErrNotFound
		}
		return model.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) List(ctx context.Context, filter model.ProjectFilter) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE enabled = TRUE`
	args := []any{}

	if filter.UserID != uuid.Nil {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		query += fmt.Sprintf(" AND $%d = ANY(tags)", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, update model.ProjectUpdate) (model.Project, error) {
	query := `UPDATE projects
			  SET title = COALESCE($2, title),
			      description = COALESCE($3, description),
			      body = COALESCE($4, body),
			      image_url = COALESCE($5, image_url),
			      tags = COALESCE($6, tags),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + projectColumns

	project, err := scanProject(r.db.QueryRow(ctx, query, id,
		update.Title, update.Description, update.Body, update.ImageURL, update.Tags))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, model.ErrNotFound
		}
		return model.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) Disable(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE projects SET enabled = FALSE, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to disable project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
