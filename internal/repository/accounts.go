package repository

import (
	"context"
	"errors"

	"github.com/nurseguard/backend/pkg/model"
)

// Account store sentinel errors. These are declined results from demo
// plumbing, not system faults.
var (
	ErrDuplicateEmail  = errors.New("an account with this email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("no active session")
)

// AccountStore persists registered staff accounts and the single active
// login session. Email matching is case-insensitive throughout.
type AccountStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	SaveSession(ctx context.Context, session *model.Session) error
	ActiveSession(ctx context.Context) (*model.Session, error)
	ClearSession(ctx context.Context) error
}
