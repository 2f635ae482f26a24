package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"newsletter/pkg/domain"
)

const usersTable = "users"

// StoreUser inserts an operator credential row.
func (p *PgSQL) StoreUser(ctx context.Context, userID domain.UserID, username, passwordHash string) error {
	_, err := p.Builder.Insert(usersTable).
		Rows(goqu.Record{
			"user_id":       uuid.UUID(userID),
			"username":      username,
			"password_hash": passwordHash,
		}).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store user into pg: %w", err)
	}

	return nil
}

// CredentialsByUsername fetches stored operator credentials, or nil when the
// username does not exist.
func (p *PgSQL) CredentialsByUsername(ctx context.Context, username string) (*domain.OperatorCredentials, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("username").Eq(username)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
