// Package newsletter implements publishing a newsletter issue to every
// confirmed subscriber as a best-effort fan-out.
package newsletter

import (
	"context"

	"newsletter/pkg/domain"
)

// Issue is one newsletter edition to be delivered.
type Issue struct {
	// Title becomes the subject line of every delivery.
	Title string
	// HTML is the HTML rendering of the issue body.
	HTML string
	// Text is the plain-text rendering of the issue body.
	Text string
}

// DeliveryFailure records a single recipient the issue could not be
// delivered to, with enough detail for manual remediation.
type DeliveryFailure struct {
	Recipient domain.SubscriberEmail `json:"recipient"`
	Reason    string                 `json:"reason"`
}

// DeliveryReport summarizes a fan-out. Attempted equals Delivered plus the
// number of Failed entries.
type DeliveryReport struct {
	Attempted int               `json:"attempted"`
	Delivered int               `json:"delivered"`
	Failed    []DeliveryFailure `json:"failed,omitempty"`
}

//go:generate mockgen -package mocknewsletter -source=interface.go -destination=mock/mocknewsletter.go *
type Service interface {
	// Publish loads the confirmed-subscriber snapshot and attempts one send
	// per recipient. Individual failures are recorded in the report without
	// aborting the batch; Publish only errors when the snapshot read fails.
	// Callers must gate Publish behind operator authentication.
	Publish(ctx context.Context, issue Issue) (DeliveryReport, error)
}
