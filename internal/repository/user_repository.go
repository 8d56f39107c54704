package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"paperfolio/internal/domain"
)

// UserRepositoryImpl implements the UserRepository interface
type UserRepositoryImpl struct {
	db *Postgres
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *Postgres) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create creates a new user
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, username, password_hash, cash, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := r.db.conn(ctx).Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Cash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, cash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(r.db.conn(ctx).QueryRow(ctx, query, id))
}

// GetByUsername retrieves a user by username
func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, cash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	return r.scanUser(r.db.conn(ctx).QueryRow(ctx, query, username))
}

// GetCashForUpdate reads the user's cash balance with a row lock
func (r *UserRepositoryImpl) GetCashForUpdate(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT cash
		FROM users
		WHERE id = $1
		FOR UPDATE
	`

	var cash decimal.Decimal
	err := r.db.conn(ctx).QueryRow(ctx, query, id).Scan(&cash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, domain.ErrNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("failed to lock user cash: %w", err)
	}

	return cash, nil
}

// UpdateCash sets the user's cash balance
func (r *UserRepositoryImpl) UpdateCash(ctx context.Context, id uuid.UUID, cash decimal.Decimal) error {
	query := `
		UPDATE users
		SET cash = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := r.db.conn(ctx).Exec(ctx, query, cash, id)
	if err != nil {
		return fmt.Errorf("failed to update user cash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *UserRepositoryImpl) scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Cash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
