package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"newsletter/pkg/serrors"
)

// Argon2id parameters used for newly hashed passwords, stored alongside the
// hash in PHC format so they can evolve without invalidating existing records.
const (
	argonMemory  uint32 = 19 * 1024
	argonTime    uint32 = 2
	argonThreads uint8  = 1
	argonSaltLen        = 16
	argonKeyLen  uint32 = 32
)

// HashPassword derives an Argon2id hash of the given password and encodes it
// as a PHC string suitable for storage.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	phc := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))

	return phc, nil
}

// VerifyPassword checks the given password against a stored PHC string.
// Returns serrors.ErrUnauthorized when the password does not match.
func VerifyPassword(phc string, password string) error {
	params, salt, key, err := decodePHC(phc)
	if err != nil {
		return err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(key))) //nolint: gosec

	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	return nil
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// decodePHC parses a PHC formatted Argon2id string of the form
// $argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>.
func decodePHC(phc string) (argonParams, []byte, []byte, error) {
	var params argonParams

	parts := strings.Split(phc, "$")
	//nolint: mnd
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, serrors.With(serrors.ErrInternal, "malformed password hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, serrors.With(serrors.ErrInternal, "unsupported password hash version")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, serrors.With(serrors.ErrInternal, "malformed password hash parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, serrors.With(serrors.ErrInternal, "malformed password hash salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, serrors.With(serrors.ErrInternal, "malformed password hash")
	}

	return params, salt, key, nil
}
