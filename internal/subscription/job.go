package subscription

import (
	"github.com/riverqueue/river"
)

// ConfirmationEmailArgs is the payload of the background job that delivers a
// confirmation email. It is enqueued in the same transaction that stores the
// subscriber, so a committed subscriber always has a pending delivery job.
type ConfirmationEmailArgs struct {
	// Email is the recipient address (already validated at subscribe time).
	Email string `json:"email"`
	// ConfirmationLink is the full URL the recipient must visit to confirm.
	ConfirmationLink string `json:"confirmationLink"`

	// maxAttempts configures how many times River should retry the delivery.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the
// confirmation email worker.
func (args ConfirmationEmailArgs) Kind() string { return "SendConfirmationEmail" }

// InsertOpts returns the River options controlling how the job is enqueued.
func (args ConfirmationEmailArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
