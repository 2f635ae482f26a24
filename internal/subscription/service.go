package subscription

import (
	"context"
	"fmt"

	"newsletter/internal/config"
	"newsletter/pkg/domain"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
)

// Options configure how subscriptions are created and how confirmation
// links are built. These settings are typically derived from application
// configuration.
type Options struct {
	// BaseURL is the externally reachable base URL of this application, used
	// to build confirmation links.
	BaseURL string
	// MaxDeliveryAttempts is the maximum number of attempts the background
	// worker should make when delivering a confirmation email.
	MaxDeliveryAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL:             cfg.Application.BaseURL,
		MaxDeliveryAttempts: cfg.Email.MaxDeliveryAttempts,
	}
}

// service is the concrete implementation of the Service interface. It
// coordinates domain validation, persistence and job enqueueing.
type service struct {
	options Options
	storage storage.Storage
}

// Subscribe validates the raw input, then atomically stores the pending
// subscriber, its confirmation token, and the confirmation email delivery
// job. If the transaction commits, the subscriber is durably pending and the
// email is guaranteed to be attempted by the worker.
func (s service) Subscribe(ctx context.Context, rawName, rawEmail string) (*domain.Subscriber, error) {
	name, err := domain.ParseSubscriberName(rawName)
	if err != nil {
		return nil, err
	}
	addr, err := domain.ParseSubscriberEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	var sub *domain.Subscriber
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreSubscriber(ctx, domain.NewSubscriber{Email: addr, Name: name})
		if err != nil {
			return fmt.Errorf("could not store subscriber: %w", err)
		}
		sub = stored

		token, err := GenerateSubscriptionToken()
		if err != nil {
			return fmt.Errorf("could not generate subscription token: %w", err)
		}
		if err := tx.StoreSubscriptionToken(ctx, token, stored.ID); err != nil {
			return fmt.Errorf("could not store subscription token: %w", err)
		}

		if _, err := tx.AddJob(ctx, ConfirmationEmailArgs{
			Email:            addr.String(),
			ConfirmationLink: s.confirmationLink(token),
			maxAttempts:      s.options.MaxDeliveryAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue confirmation email: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return sub, nil
}

// Confirm consumes a confirmation token. A malformed token is treated exactly
// like an unknown one so the outward response never reveals which it was.
// Confirming an already-confirmed subscriber succeeds without error.
func (s service) Confirm(ctx context.Context, token string) (*domain.Subscriber, error) {
	if !isWellFormedToken(token) {
		return nil, serrors.With(serrors.ErrNotFound, "subscription token not found")
	}

	sub, err := s.storage.ConfirmSubscriber(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("could not confirm subscriber: %w", err)
	}
	if sub == nil {
		return nil, serrors.With(serrors.ErrNotFound, "subscription token not found")
	}

	return sub, nil
}

func (s service) confirmationLink(token string) string {
	return fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.options.BaseURL, token)
}

// New creates a new Service backed by the provided storage and configured
// with the given options.
func New(storage storage.Storage, options Options) Service {
	return &service{
		options: options,
		storage: storage,
	}
}
