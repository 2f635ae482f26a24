package subscription_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newsletter/internal/subscription"
	"newsletter/pkg/domain"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
	mockstorage "newsletter/pkg/storage/mock"
)

const baseURL = "https://newsletter.example.com"

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, subscription.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := subscription.New(st, subscription.Options{BaseURL: baseURL, MaxDeliveryAttempts: 5})

	return ctrl, st, s
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestSubscribe_StoresSubscriberTokenAndJob(t *testing.T) {
	ctrl, st, s := newTestService(t)

	stored := &domain.Subscriber{
		ID:     domain.SubscriberID(uuid.New()),
		Email:  "ursula@example.com",
		Name:   "Ursula Le Guin",
		Status: domain.StatusPendingConfirmation,
	}

	var issuedToken string
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSubscriber(gomock.Any(), domain.NewSubscriber{
			Email: "ursula@example.com",
			Name:  "Ursula Le Guin",
		}).Return(stored, nil)

		tx.EXPECT().StoreSubscriptionToken(gomock.Any(), gomock.Any(), stored.ID).DoAndReturn(
			func(_ context.Context, token string, _ domain.SubscriberID) error {
				issuedToken = token

				return nil
			})

		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				jobArgs, ok := args.(subscription.ConfirmationEmailArgs)
				require.True(t, ok)
				require.Equal(t, "ursula@example.com", jobArgs.Email)
				require.Equal(t,
					baseURL+"/subscriptions/confirm?subscription_token="+issuedToken,
					jobArgs.ConfirmationLink)
				require.Equal(t, 5, jobArgs.InsertOpts().MaxAttempts)

				return true, nil
			})
	})

	sub, err := s.Subscribe(context.Background(), "Ursula Le Guin", "ursula@example.com")
	require.NoError(t, err)
	require.Equal(t, stored, sub)
	require.Len(t, issuedToken, subscription.TokenLength)
}

func TestSubscribe_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		testName string
		name     string
		email    string
	}{
		{testName: "empty name", name: "", email: "ursula@example.com"},
		{testName: "forbidden character in name", name: "Ursula <script>", email: "ursula@example.com"},
		{testName: "empty email", name: "Ursula Le Guin", email: ""},
		{testName: "email without at sign", name: "Ursula Le Guin", email: "ursula.example.com"},
		{testName: "email without domain", name: "Ursula Le Guin", email: "ursula@"},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			_, _, s := newTestService(t)

			_, err := s.Subscribe(context.Background(), test.name, test.email)
			require.Error(t, err)
			require.True(t, errors.Is(err, serrors.ErrBadRequest))
		})
	}
}

func TestSubscribe_DuplicateEmailSurfacesConflict(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSubscriber(gomock.Any(), gomock.Any()).
			Return(nil, serrors.With(serrors.ErrConflict, "subscriber already exists"))
	})

	_, err := s.Subscribe(context.Background(), "Ursula Le Guin", "ursula@example.com")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrConflict))
}

func TestSubscribe_TokenStoreFailureAbortsTx(t *testing.T) {
	ctrl, st, s := newTestService(t)

	stored := &domain.Subscriber{ID: domain.SubscriberID(uuid.New()), Status: domain.StatusPendingConfirmation}
	storeErr := errors.New("disk full")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSubscriber(gomock.Any(), gomock.Any()).Return(stored, nil)
		tx.EXPECT().StoreSubscriptionToken(gomock.Any(), gomock.Any(), stored.ID).Return(storeErr)
	})

	_, err := s.Subscribe(context.Background(), "Ursula Le Guin", "ursula@example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, storeErr)
}

func TestConfirm_TransitionsSubscriber(t *testing.T) {
	_, st, s := newTestService(t)

	token := "mUvxvBVFrQqzRCkrgCemJWCFV"
	confirmed := &domain.Subscriber{
		ID:     domain.SubscriberID(uuid.New()),
		Status: domain.StatusConfirmed,
	}
	st.EXPECT().ConfirmSubscriber(gomock.Any(), token).Return(confirmed, nil)

	sub, err := s.Confirm(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, confirmed, sub)
}

func TestConfirm_MalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "too short", token: "abc"},
		{name: "too long", token: "mUvxvBVFrQqzRCkrgCemJWCFVx"},
		{name: "non alphanumeric", token: "mUvxvBVFrQqzRCkrgCemJWCF!"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Storage must never see a malformed token.
			_, _, s := newTestService(t)

			_, err := s.Confirm(context.Background(), test.token)
			require.Error(t, err)
			require.True(t, errors.Is(err, serrors.ErrNotFound))
		})
	}
}

func TestConfirm_UnknownToken(t *testing.T) {
	_, st, s := newTestService(t)

	token := "sBAYiKzJBLkjmKnHvEjPLzXMK"
	st.EXPECT().ConfirmSubscriber(gomock.Any(), token).Return(nil, nil)

	_, err := s.Confirm(context.Background(), token)
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrNotFound))
}
