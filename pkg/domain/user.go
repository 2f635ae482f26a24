package domain

import "github.com/google/uuid"

// UserID uniquely identifies an operator user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// OperatorCredentials holds the stored authentication material for an
// operator. PasswordHash is a PHC-encoded argon2id string; the plain password
// never appears in this type.
type OperatorCredentials struct {
	UserID       UserID
	Username     string
	PasswordHash string
}
