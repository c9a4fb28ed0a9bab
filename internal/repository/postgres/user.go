package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/univc/portfolio-server/internal/model"
)

// SQLSTATE for unique-constraint violations.
const uniqueViolationCode = "23505"

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, name, email, contact, password_hash, course, period,
    start_year, end_year, birth_date, image_url, xp_total, current_level_id,
    is_new, enabled, validated, last_signed_at, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Contact, &user.PasswordHash,
		&user.Course, &user.Period, &user.StartYear, &user.EndYear, &user.BirthDate,
		&user.ImageURL, &user.XPTotal, &user.CurrentLevelID,
		&user.IsNew, &user.Enabled, &user.Validated,
		&user.LastSignedAt, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, name, email, contact, password_hash)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + userColumns

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Contact, user.PasswordHash,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return model.User{}, model.ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) EmailTakenByOther(ctx context.Context, email string, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`

	var taken bool
	if err := r.db.QueryRow(ctx, query, email, userID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return taken, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE users
			  SET name = $2, email = $3, contact = $4, course = $5, period = $6,
			      start_year = $7, end_year = $8, birth_date = $9, image_url = $10,
			      is_new = $11, enabled = $12, validated = $13, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Contact, user.Course, user.Period,
		user.StartYear, user.EndYear, user.BirthDate, user.ImageURL,
		user.IsNew, user.Enabled, user.Validated,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) TouchLastSigned(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET last_signed_at = NOW(), updated_at = NOW() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to update last signed: %w", err)
	}
	return nil
}

func (r *UserRepository) AddXP(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	query := `UPDATE users SET xp_total = xp_total + $2, updated_at = NOW()
			  WHERE id = $1
			  RETURNING xp_total`

	var total int
	err := r.db.QueryRow(ctx, query, id, amount).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrNotFound
		}
		return 0, fmt.Errorf("failed to add xp: %w", err)
	}
	return total, nil
}

func (r *UserRepository) SetCurrentLevel(ctx context.Context, id uuid.UUID, levelID *uuid.UUID) error {
	query := `UPDATE users SET current_level_id = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, levelID); err != nil {
		return fmt.Errorf("failed to set current level: %w", err)
	}
	return nil
}
