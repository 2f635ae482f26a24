package storage

import (
	"context"

	"newsletter/pkg/domain"
)

// UserStorage defines the repository operations for operator credentials.
type UserStorage interface {
	// StoreUser inserts an operator with the given username and PHC-encoded
	// password hash. The plain password never reaches this layer.
	StoreUser(ctx context.Context, userID domain.UserID, username, passwordHash string) error

	// CredentialsByUsername fetches the stored credentials for a username.
	// Returns nil when the user does not exist; the caller is responsible for
	// not leaking that distinction outward.
	CredentialsByUsername(ctx context.Context, username string) (*domain.OperatorCredentials, error)
}
