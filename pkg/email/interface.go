// Package email defines the interface and data types used to deliver
// transactional email through a backing provider.
package email

import (
	"context"

	"newsletter/pkg/domain"
)

// SendRequest describes a single outbound email. It is an immutable value;
// it carries no identity beyond its fields.
type SendRequest struct {
	// To is the recipient address.
	To domain.SubscriberEmail
	// Subject is the message subject line.
	Subject string
	// HTMLBody is the HTML rendering of the message.
	HTMLBody string
	// TextBody is the plain-text rendering of the message.
	TextBody string
}

// Client is the abstraction for transactional email delivery. Implementations
// perform exactly one outbound provider call per Send attempt and keep no
// local state.
//
// Send returns serrors.ErrRejected when the provider permanently refused the
// message and serrors.ErrUnavailable for transient failures (timeouts,
// provider 5xx) that exhausted any retry budget the implementation carries.
//
//go:generate mockgen -package mockemail -source=interface.go -destination=mock/mockemail.go *
type Client interface {
	Send(ctx context.Context, req SendRequest) error
}
