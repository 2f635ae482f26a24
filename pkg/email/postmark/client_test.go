package postmark_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"newsletter/pkg/email"
	"newsletter/pkg/email/postmark"
	"newsletter/pkg/serrors"
)

const (
	testToken  = "server-token"
	testSender = "newsletter@example.com"
)

func sendRequest() email.SendRequest {
	return email.SendRequest{
		To:       "ursula@example.com",
		Subject:  "Welcome!",
		HTMLBody: "<p>Welcome</p>",
		TextBody: "Welcome",
	}
}

func TestClient_Send_Success(t *testing.T) {
	var gotPath, gotToken string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Postmark-Server-Token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := postmark.New(srv.Client(), srv.URL, testToken, testSender)
	require.NoError(t, client.Send(context.Background(), sendRequest()))

	require.Equal(t, "/email", gotPath)
	require.Equal(t, testToken, gotToken)
	require.Equal(t, map[string]string{
		"From":     testSender,
		"To":       "ursula@example.com",
		"Subject":  "Welcome!",
		"HtmlBody": "<p>Welcome</p>",
		"TextBody": "Welcome",
	}, gotBody)
}

func TestClient_Send_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind error
	}{
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantKind: serrors.ErrRejected},
		{name: "unauthorized token", status: http.StatusUnauthorized, wantKind: serrors.ErrRejected},
		{name: "server error", status: http.StatusInternalServerError, wantKind: serrors.ErrUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantKind: serrors.ErrUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"ErrorCode":300,"Message":"nope"}`, test.status)
			}))
			defer srv.Close()

			client := postmark.New(srv.Client(), srv.URL, testToken, testSender)
			err := client.Send(context.Background(), sendRequest())
			require.Error(t, err)
			require.True(t, errors.Is(err, test.wantKind))
		})
	}
}

func TestClient_Send_TransportFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	client := postmark.New(&http.Client{Timeout: time.Second}, srv.URL, testToken, testSender)
	err := client.Send(context.Background(), sendRequest())
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
}
