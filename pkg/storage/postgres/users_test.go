package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"newsletter/pkg/domain"
)

func TestPgSQL_StoreUserAndCredentialsByUsername(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	const phc = "$argon2id$v=19$m=19456,t=2,p=1$c29tZXNhbHQ$c29tZWhhc2g"

	require.NoError(t, pg.StoreUser(ctx, userID, "editor", phc))

	creds, err := pg.CredentialsByUsername(ctx, "editor")
	require.NoError(t, err)
	require.NotNil(t, creds)
	require.Equal(t, userID, creds.UserID)
	require.Equal(t, "editor", creds.Username)
	require.Equal(t, phc, creds.PasswordHash)
}

func TestPgSQL_CredentialsByUsername_Unknown(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	creds, err := pg.CredentialsByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	require.Nil(t, creds)
}
