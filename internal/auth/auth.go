// Package auth validates operator credentials for protected endpoints.
// Passwords are stored as Argon2id hashes in PHC format.
package auth

import (
	"context"
	"fmt"

	"newsletter/pkg/domain"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
)

// dummyPHC is a valid Argon2id hash of a random throwaway password. It is
// verified whenever the username is unknown so that the response time does not
// reveal whether a username exists.
const dummyPHC = "$argon2id$v=19$m=19456,t=2,p=1$bm8gc2FsdCB0byBzZWUgaGVyZQ$Wel+zGanJL1AvRJcNEjBm0t7GwXz1e8K0gZnKHBHLJk" //nolint: gosec, lll

// Validator authenticates operators against stored credentials.
type Validator struct {
	storage storage.Storage
}

// NewValidator creates a new credential Validator on top of the given Storage.
func NewValidator(str storage.Storage) *Validator {
	return &Validator{storage: str}
}

// Authenticate verifies the given username and password pair and returns the
// matching operator ID. Unknown usernames and wrong passwords both produce the
// same serrors.ErrUnauthorized, after comparable amounts of work.
func (v *Validator) Authenticate(ctx context.Context, username string, password string) (domain.UserID, error) {
	creds, err := v.storage.CredentialsByUsername(ctx, username)
	if err != nil {
		return domain.UserID{}, fmt.Errorf("could not load credentials: %w", err)
	}

	if creds == nil {
		// Burn the same amount of CPU as a real verification would.
		_ = VerifyPassword(dummyPHC, password)

		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	if err := VerifyPassword(creds.PasswordHash, password); err != nil {
		return domain.UserID{}, err
	}

	return creds.UserID, nil
}
