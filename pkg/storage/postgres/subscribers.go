package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"newsletter/pkg/domain"
	"newsletter/pkg/serrors"
)

const (
	subscriptionsTable = "subscriptions"
	tokensTable        = "subscription_tokens"
)

// StoreSubscriber inserts a new subscriber in pending_confirmation status and
// returns the stored row. A unique violation on the email column is reported
// as serrors.ErrConflict.
func (p *PgSQL) StoreSubscriber(ctx context.Context, sub domain.NewSubscriber) (*domain.Subscriber, error) {
	row := PgSubscriber{
		ID:     uuid.New(),
		Email:  sub.Email.String(),
		Name:   sub.Name.String(),
		Status: string(domain.StatusPendingConfirmation),
	}

	var stored PgSubscriber
	found, err := p.Builder.Insert(subscriptionsTable).
		Rows(row).
		Returning(&PgSubscriber{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "subscriber already exists")
		}

		return nil, fmt.Errorf("could not store subscriber into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("subscriber insert returned no row")
	}

	return stored.ToDomain(), nil
}

// StoreSubscriptionToken persists the token binding for a subscriber.
func (p *PgSQL) StoreSubscriptionToken(ctx context.Context, token string, subscriberID domain.SubscriberID) error {
	_, err := p.Builder.Insert(tokensTable).
		Rows(goqu.Record{
			"subscription_token": token,
			"subscriber_id":      uuid.UUID(subscriberID),
		}).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store subscription token into pg: %w", err)
	}

	return nil
}

// ConfirmSubscriber sets the subscriber bound to the token to confirmed and
// returns the resulting row. The update is unconditional on the current
// status, so re-confirming is a no-op write and the operation stays
// idempotent. When the token is unknown, nil is returned without error.
func (p *PgSQL) ConfirmSubscriber(ctx context.Context, token string) (*domain.Subscriber, error) {
	boundSubscriber := p.Builder.From(tokensTable).
		Select("subscriber_id").
		Where(goqu.I("subscription_token").Eq(token))

	var row PgSubscriber
	found, err := p.Builder.Update(subscriptionsTable).
		Set(goqu.Record{"status": string(domain.StatusConfirmed)}).
		Where(goqu.I("id").In(boundSubscriber)).
		Returning(&PgSubscriber{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not confirm subscriber in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ConfirmedEmails returns the addresses of all confirmed subscribers.
func (p *PgSQL) ConfirmedEmails(ctx context.Context) ([]domain.SubscriberEmail, error) {
	var emails []string
	if err := p.Builder.From(subscriptionsTable).
		Select("email").
		Where(goqu.I("status").Eq(string(domain.StatusConfirmed))).
		Executor().ScanValsContext(ctx, &emails); err != nil {
		return nil, fmt.Errorf("could not fetch confirmed emails from pg: %w", err)
	}

	out := make([]domain.SubscriberEmail, 0, len(emails))
	for _, e := range emails {
		out = append(out, domain.SubscriberEmail(e))
	}

	return out, nil
}
