// Package subscription implements the subscriber lifecycle: validating and
// persisting new subscribers, issuing confirmation tokens, and consuming
// those tokens to confirm a subscription.
package subscription

import (
	"context"

	"newsletter/pkg/domain"
)

//go:generate mockgen -package mocksubscription -source=interface.go -destination=mock/mocksubscription.go *
type Service interface {
	// Subscribe validates the raw name and email, stores a pending subscriber
	// together with a fresh confirmation token, and enqueues the confirmation
	// email. The whole operation is transactional.
	Subscribe(ctx context.Context, name, email string) (*domain.Subscriber, error)
	// Confirm transitions the subscriber bound to the token to confirmed.
	// Unknown and malformed tokens surface the same not-found error class.
	Confirm(ctx context.Context, token string) (*domain.Subscriber, error)
}
