package newsletter

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"newsletter/pkg/email"
	"newsletter/pkg/logger"
	"newsletter/pkg/metrics"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
)

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
	client  email.Client
}

// Publish fans the issue out to every confirmed subscriber. One slow or
// failing recipient never blocks the rest: each send failure is classified,
// counted, and recorded in the report, then delivery continues.
func (s service) Publish(ctx context.Context, issue Issue) (DeliveryReport, error) {
	recipients, err := s.storage.ConfirmedEmails(ctx)
	if err != nil {
		return DeliveryReport{}, fmt.Errorf("could not load confirmed subscribers: %w", err)
	}

	report := DeliveryReport{Attempted: len(recipients)}
	for _, to := range recipients {
		err := s.client.Send(ctx, email.SendRequest{
			To:       to,
			Subject:  issue.Title,
			HTMLBody: issue.HTML,
			TextBody: issue.Text,
		})
		if err != nil {
			logger.Error(ctx, "newsletter delivery failed",
				zap.String("recipient", to.String()),
				zap.Error(err))
			metrics.NewsletterDeliveries.WithLabelValues("failed").Inc()

			report.Failed = append(report.Failed, DeliveryFailure{
				Recipient: to,
				Reason:    failureReason(err),
			})

			continue
		}

		metrics.NewsletterDeliveries.WithLabelValues("delivered").Inc()
		report.Delivered++
	}

	return report, nil
}

// failureReason maps a send error to its semantic failure class. Internal
// detail (provider messages, connection strings) is deliberately not exposed
// in the report.
func failureReason(err error) string {
	switch {
	case errors.Is(err, serrors.ErrRejected):
		return serrors.ErrRejected.Error()
	case errors.Is(err, serrors.ErrTimeout):
		return serrors.ErrTimeout.Error()
	default:
		return serrors.ErrUnavailable.Error()
	}
}

// New creates a newsletter Service delivering through the given email client.
func New(storage storage.Storage, client email.Client) Service {
	return &service{
		storage: storage,
		client:  client,
	}
}
