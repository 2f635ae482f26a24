package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"newsletter/internal/subscription"
	"newsletter/pkg/domain"
	"newsletter/pkg/email"
	"newsletter/pkg/logger"
	"newsletter/pkg/metrics"
	"newsletter/pkg/serrors"
)

const (
	confirmationSubject = "Welcome!"

	confirmationHTMLTemplate = "Welcome to our newsletter!<br />" +
		"Click <a href=%q>here</a> to confirm your subscription."
	confirmationTextTemplate = "Welcome to our newsletter!\n" +
		"Visit %s to confirm your subscription."
)

// ConfirmationEmailWorker is a River worker that delivers the confirmation
// email for a newly stored subscriber. Transient provider failures are
// returned as plain errors so River retries the job up to its MaxAttempts;
// permanent provider rejections cancel the job since retrying cannot help.
type ConfirmationEmailWorker struct {
	river.WorkerDefaults[subscription.ConfirmationEmailArgs]

	mailClient email.Client
}

// NewConfirmationEmailWorker constructs a ConfirmationEmailWorker sending
// through the provided email client.
func NewConfirmationEmailWorker(mailClient email.Client) *ConfirmationEmailWorker {
	return &ConfirmationEmailWorker{mailClient: mailClient}
}

// Work delivers a single confirmation email.
func (c *ConfirmationEmailWorker) Work(ctx context.Context, job *river.Job[subscription.ConfirmationEmailArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("email", job.Args.Email))

	err := c.mailClient.Send(ctx, email.SendRequest{
		To:       domain.SubscriberEmail(job.Args.Email),
		Subject:  confirmationSubject,
		HTMLBody: fmt.Sprintf(confirmationHTMLTemplate, job.Args.ConfirmationLink),
		TextBody: fmt.Sprintf(confirmationTextTemplate, job.Args.ConfirmationLink),
	})
	if err != nil {
		logger.Error(ctx, "error sending confirmation email", zap.Error(err))

		if errors.Is(err, serrors.ErrRejected) {
			metrics.ConfirmationEmails.WithLabelValues("rejected").Inc()

			return river.JobCancel(err) //nolint: wrapcheck
		}

		metrics.ConfirmationEmails.WithLabelValues("unavailable").Inc()

		return fmt.Errorf("could not send confirmation email: %w", err)
	}

	metrics.ConfirmationEmails.WithLabelValues("delivered").Inc()
	logger.Info(ctx, "confirmation email sent")

	return nil
}
