package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carelane/staffbot/internal/domain"
)

// Queries is the hand-written data access layer over the pgx pool.
type Queries struct {
	db *pgxpool.Pool
}

func NewQueries(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}

const userColumns = `id, telegram_id, is_admin, first_name, username,
	user_role, profession, last_interaction, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.TelegramID, &u.IsAdmin, &u.FirstName, &u.Username,
		&u.Role, &u.Profession, &u.LastInteraction, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (q *Queries) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (q *Queries) CreateUser(ctx context.Context, telegramID int64, firstName, username string, isAdmin bool) (*domain.User, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO users (telegram_id, first_name, username, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		telegramID, firstName, username, isAdmin)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (q *Queries) UpdateUserRole(ctx context.Context, id int64, role string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE users SET user_role = $2, updated_at = now() WHERE id = $1`, id, role)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	return nil
}

func (q *Queries) UpdateUserProfession(ctx context.Context, id int64, profession string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE users SET profession = $2, updated_at = now() WHERE id = $1`, id, profession)
	if err != nil {
		return fmt.Errorf("update user profession: %w", err)
	}
	return nil
}

func (q *Queries) UpdateLastInteraction(ctx context.Context, id int64, at time.Time) error {
	_, err := q.db.Exec(ctx,
		`UPDATE users SET last_interaction = $2, updated_at = now() WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last interaction: %w", err)
	}
	return nil
}

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := q.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
