package integration_tests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/repository"
	"github.com/nurseguard/backend/pkg/model"
)

// setupTestDB creates a PostgreSQL testcontainer and returns the connection pool
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("nurseguard_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connString, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return pool, cleanup
}

// TestPostgresAccountStoreIntegration exercises the account store against a
// real PostgreSQL instance
func TestPostgresAccountStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := repository.NewPostgresAccountStore(pool, zap.NewNop())
	require.NoError(t, store.EnsureSchema(ctx))
	// Running the schema setup twice must be harmless
	require.NoError(t, store.EnsureSchema(ctx))

	t.Run("create and find users", func(t *testing.T) {
		user := &model.User{
			ID:         uuid.New().String(),
			Name:       "Sarah Johnson",
			Email:      "sarah@hospital.com",
			Role:       "Nurse",
			Department: "ICU",
			Password:   "ward-secret",
			CreatedAt:  time.Now(),
		}
		require.NoError(t, store.CreateUser(ctx, user))

		found, err := store.FindUserByEmail(ctx, "SARAH@Hospital.COM")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "ward-secret", found.Password)
		assert.Equal(t, "ICU", found.Department)

		_, err = store.FindUserByEmail(ctx, "nobody@hospital.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("duplicate email rejected case-insensitively", func(t *testing.T) {
		dup := &model.User{
			ID:        uuid.New().String(),
			Name:      "Impostor",
			Email:     "SARAH@hospital.com",
			Password:  "other-secret",
			CreatedAt: time.Now(),
		}
		err := store.CreateUser(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("single active session", func(t *testing.T) {
		_, err := store.ActiveSession(ctx)
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)

		first := &model.Session{Token: uuid.New().String(), UserID: "u-1", CreatedAt: time.Now()}
		require.NoError(t, store.SaveSession(ctx, first))

		second := &model.Session{Token: uuid.New().String(), UserID: "u-2", CreatedAt: time.Now()}
		require.NoError(t, store.SaveSession(ctx, second))

		active, err := store.ActiveSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, second.Token, active.Token, "a new login replaces the active session")

		require.NoError(t, store.ClearSession(ctx))
		require.NoError(t, store.ClearSession(ctx), "clearing twice is a no-op")

		_, err = store.ActiveSession(ctx)
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	})
}
