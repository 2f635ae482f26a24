package storage

import (
	"context"

	"newsletter/pkg/domain"
)

// SubscriberStorage defines the repository operations for subscriber records
// and their confirmation tokens.
type SubscriberStorage interface {
	// StoreSubscriber inserts a new subscriber with a fresh ID, status
	// pending_confirmation and the current timestamp, returning the stored row.
	// The insert is atomic: a partially written record is never observable.
	// Inserting an email that already exists fails with serrors.ErrConflict.
	StoreSubscriber(ctx context.Context, sub domain.NewSubscriber) (*domain.Subscriber, error)

	// StoreSubscriptionToken persists the one-to-one binding between a
	// confirmation token and a subscriber.
	StoreSubscriptionToken(ctx context.Context, token string, subscriberID domain.SubscriberID) error

	// ConfirmSubscriber transitions the subscriber bound to the given token to
	// confirmed and returns the resulting row. The transition is idempotent:
	// confirming an already-confirmed subscriber succeeds and returns the row
	// unchanged. When no subscriber is bound to the token, nil is returned
	// without error; the caller decides how to surface that.
	ConfirmSubscriber(ctx context.Context, token string) (*domain.Subscriber, error)

	// ConfirmedEmails returns the addresses of every subscriber currently in
	// confirmed status. The result is a point-in-time snapshot in unspecified
	// order.
	ConfirmedEmails(ctx context.Context) ([]domain.SubscriberEmail, error)
}
