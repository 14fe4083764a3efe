package store

import (
	"context"
	"errors"

	"user-management-api/internal/constants"
	"user-management-api/internal/models"
)

// Sentinel errors for store operations. Callers should check them with
// errors.Is and translate them into their own error vocabulary.
var (
	// ErrDuplicateEmail indicates an insert collided with the unique
	// email index. Exactly one of two concurrent inserts with the same
	// email receives it.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound indicates no record matched the lookup.
	ErrNotFound = errors.New("user not found")
)

// UserStore is the data-access contract for account records. The service
// layer depends on this interface only, never on gorm directly. Uniqueness
// of email is enforced inside the store (unique index), not by
// check-then-insert in callers.
type UserStore interface {
	// Create inserts a new account and fills in the generated ID and
	// RegistrationTime. Returns ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the account matching the given email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the account with the given id.
	GetByID(ctx context.Context, id uint) (*models.User, error)

	// List returns all accounts, ordered by id.
	List(ctx context.Context) ([]models.User, error)

	// UpdateStatusByEmail sets the status of the matching account.
	// Returns ErrNotFound if no account has that email.
	UpdateStatusByEmail(ctx context.Context, email string, status constants.UserStatus) error

	// UpdateStatusByIDs sets the status of every matching account.
	// IDs with no matching record are silently ignored.
	UpdateStatusByIDs(ctx context.Context, ids []uint, status constants.UserStatus) error

	// TouchLastLogin sets the account's last_login to the current time.
	TouchLastLogin(ctx context.Context, id uint) error

	// DeleteByIDs removes every matching account. IDs with no matching
	// record are silently ignored.
	DeleteByIDs(ctx context.Context, ids []uint) error
}
