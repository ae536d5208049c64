package store

import (
	"context"
	"errors"

	"github.com/PaynestHQ/paynest-mobile/models"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("account already exists")
)

// UserStore is the persistence boundary of the auth API. The postgres
// implementation backs real deployments; the in-memory one backs tests.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	// SetVerified flips the verified flag for channel "email" or "phone".
	SetVerified(ctx context.Context, id, channel string) error
	// AdvanceCodeCounter bumps the HOTP counter, expiring the previous code,
	// and returns the new counter value.
	AdvanceCodeCounter(ctx context.Context, id string) (uint64, error)
}
