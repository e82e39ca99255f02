package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/pkg/model"
)

const uniqueViolationCode = "23505"

// PostgresAccountStore is the optional database-backed AccountStore, enabled
// when DATABASE_URL is configured. It keeps the same single-active-session
// contract as the in-memory store.
type PostgresAccountStore struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresAccountStore creates a PostgresAccountStore over an existing
// connection pool.
func NewPostgresAccountStore(db *pgxpool.Pool, logger *zap.Logger) *PostgresAccountStore {
	return &PostgresAccountStore{db: db, logger: logger}
}

// EnsureSchema creates the account tables if they do not exist. Acceptable
// for a demo deployment; a production service would run real migrations.
func (s *PostgresAccountStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email))`,
		`CREATE TABLE IF NOT EXISTS active_session (
			singleton BOOLEAN PRIMARY KEY DEFAULT TRUE,
			token TEXT NOT NULL,
			user_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			CONSTRAINT active_session_singleton CHECK (singleton)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure account schema: %w", err)
		}
	}
	return nil
}

// CreateUser registers a user; the lowercased unique index enforces
// case-insensitive email uniqueness.
func (s *PostgresAccountStore) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, name, email, role, department, password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Role,
		user.Department,
		user.Password,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateEmail
		}
		s.logger.Error("failed to create user", zap.Error(err), zap.String("user_id", user.ID))
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindUserByEmail matches case-insensitively.
func (s *PostgresAccountStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, role, department, password, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var user model.User
	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Department,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to find user", zap.Error(err))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// ListUsers returns all registered users, oldest first.
func (s *PostgresAccountStore) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, name, email, role, department, password, created_at
		FROM users
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.Department,
			&user.Password,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// SaveSession upserts the single active session row.
func (s *PostgresAccountStore) SaveSession(ctx context.Context, session *model.Session) error {
	query := `
		INSERT INTO active_session (singleton, token, user_id, created_at)
		VALUES (TRUE, $1, $2, $3)
		ON CONFLICT (singleton)
		DO UPDATE SET token = EXCLUDED.token, user_id = EXCLUDED.user_id, created_at = EXCLUDED.created_at
	`

	if _, err := s.db.Exec(ctx, query, session.Token, session.UserID, session.CreatedAt); err != nil {
		s.logger.Error("failed to save session", zap.Error(err))
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ActiveSession returns the current session, if any.
func (s *PostgresAccountStore) ActiveSession(ctx context.Context) (*model.Session, error) {
	query := `SELECT token, user_id, created_at FROM active_session WHERE singleton`

	var session model.Session
	err := s.db.QueryRow(ctx, query).Scan(&session.Token, &session.UserID, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("failed to load session", zap.Error(err))
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &session, nil
}

// ClearSession deletes the active session row; idempotent.
func (s *PostgresAccountStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM active_session WHERE singleton`); err != nil {
		s.logger.Error("failed to clear session", zap.Error(err))
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
