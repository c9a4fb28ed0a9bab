package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/univc/portfolio-server/internal/model"
)

var _ model.LevelStore = (*LevelRepository)(nil)

type LevelRepository struct {
	db *Connection
}

func NewLevelRepository(db *Connection) *LevelRepository {
	return &LevelRepository{db: db}
}

const levelColumns = `id, title, tag, rank, xp_min, xp_max, description, enabled, created_at, updated_at`

func scanLevel(row pgx.Row) (model.Level, error) {
	var l model.Level
	err := row.Scan(&l.ID, &l.Title, &l.Tag, &l.Rank, &l.XPMin, &l.XPMax,
		&l.Description, &l.Enabled, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *LevelRepository) Create(ctx context.Context, level model.Level) (model.Level, error) {
	query := `INSERT INTO levels (id, title, tag, rank, xp_min, xp_max, description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + levelColumns

	if level.ID == uuid.Nil {
		level.ID = uuid.New()
	}

	saved, err := scanLevel(r.db.QueryRow(ctx, query,
		level.ID, level.Title, level.Tag, level.Rank, level.XPMin, level.XPMax, level.Description))
	if err != nil {
		return model.Level{}, fmt.Errorf("failed to create level: %w", err)
	}
	return saved, nil
}

func (r *LevelRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Level, error) {
	query := `SELECT ` + levelColumns + ` FROM levels WHERE id = $1`

	level, err := scanLevel(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Level{}, model.ErrNotFound
		}
		return model.Level{}, fmt.Errorf("failed to get level by id: %w", err)
	}
	return level, nil
}

func (r *LevelRepository) List(ctx context.Context, tag string) ([]model.Level, error) {
	query := `SELECT ` + levelColumns + ` FROM levels WHERE enabled = TRUE ORDER BY tag, rank`
	args := []any{}
	if tag != "" {
		query = `SELECT ` + levelColumns + ` FROM levels WHERE tag = $1 ORDER BY tag, rank`
		args = append(args, tag)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	levels := []model.Level{}
	for rows.Next() {
		level, err := scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan level: %w", err)
		}
		levels = append(levels, level)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate levels: %w", err)
	}
	return levels, nil
}

func (r *LevelRepository) Update(ctx context.Context, id uuid.UUID, update model.LevelUpdate) (model.Level, error) {
	query := `UPDATE levels
			  SET title = COALESCE($2, title),
			      tag = COALESCE($3, tag),
			      rank = COALESCE($4, rank),
			      xp_min = COALESCE($5, xp_min),
			      xp_max = COALESCE($6, xp_max),
			      description = COALESCE($7, description),
			      enabled = COALESCE($8, enabled),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + levelColumns

	level, err := scanLevel(r.db.QueryRow(ctx, query, id,
		update.Title, update.Tag, update.Rank, update.XPMin, update.XPMax,
		update.Description, update.Enabled))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Level{}, model.ErrNotFound
		}
		return model.Level{}, fmt.Errorf("failed to update level: %w", err)
	}
	return level, nil
}

func (r *LevelRepository) Disable(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE levels SET enabled = FALSE, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to disable level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *LevelRepository) FindForXP(ctx context.Context, xp int) (model.Level, error) {
	query := `SELECT ` + levelColumns + `
			  FROM levels
			  WHERE xp_min <= $1
			    AND (xp_max IS NULL OR xp_max >= $1)
			    AND enabled = TRUE
			  ORDER BY xp_min DESC
			  LIMIT 1`

	level, err := scanLevel(r.db.QueryRow(ctx, query, xp))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Level{}, model.ErrNotFound
		}
		return model.Level{}, fmt.Errorf("failed to find level for xp: %w", err)
	}
	return level, nil
}
