package email_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newsletter/pkg/email"
	mockemail "newsletter/pkg/email/mock"
	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func fastRetryOptions() email.RetryOptions {
	return email.RetryOptions{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	}
}

func TestWithRetry_SucceedsFirstAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mockemail.NewMockClient(ctrl)
	inner.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	client := email.WithRetry(inner, fastRetryOptions())
	require.NoError(t, client.Send(context.Background(), email.SendRequest{To: "a@example.com"}))
}

func TestWithRetry_RetriesTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mockemail.NewMockClient(ctrl)

	gomock.InOrder(
		inner.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(serrors.With(serrors.ErrUnavailable, "provider outage")),
		inner.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(serrors.With(serrors.ErrUnavailable, "provider outage")),
		inner.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
	)

	client := email.WithRetry(inner, fastRetryOptions())
	require.NoError(t, client.Send(context.Background(), email.SendRequest{To: "a@example.com"}))
}

func TestWithRetry_ExhaustsBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mockemail.NewMockClient(ctrl)

	// first attempt plus MaxRetries retries
	inner.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrUnavailable, "provider outage")).
		Times(4)

	client := email.WithRetry(inner, fastRetryOptions())
	err := client.Send(context.Background(), email.SendRequest{To: "a@example.com"})
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
}

func TestWithRetry_NeverRetriesRejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mockemail.NewMockClient(ctrl)

	inner.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrRejected, "inactive recipient")).
		Times(1)

	client := email.WithRetry(inner, fastRetryOptions())
	err := client.Send(context.Background(), email.SendRequest{To: "gone@example.com"})
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrRejected))
}

func TestWithRetry_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mockemail.NewMockClient(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	inner.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, email.SendRequest) error {
			cancel()

			return serrors.With(serrors.ErrUnavailable, "provider outage")
		})

	client := email.WithRetry(inner, email.RetryOptions{
		MaxRetries:      10,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
	})
	err := client.Send(ctx, email.SendRequest{To: "a@example.com"})
	require.Error(t, err)
}
