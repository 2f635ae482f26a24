// Package postmark provides an email.Client implementation backed by a
// Postmark-compatible transactional email API.
package postmark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"newsletter/pkg/email"
	"newsletter/pkg/serrors"
)

// Client talks to the provider's REST API and fulfills the email.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the provider
	baseURL    string       // baseURL of the provider API, no trailing slash
	token      string       // token is the provider server token
	sender     string       // sender is the from-address for all outgoing mail
}

// Send submits one email to the provider. Any 2xx response is success.
// A 4xx response means the provider permanently refused the message
// (serrors.ErrRejected); 5xx responses and transport failures are transient
// (serrors.ErrUnavailable) and may be retried by the caller.
func (c *Client) Send(ctx context.Context, sendReq email.SendRequest) error {
	// https://postmarkapp.com/developer/api/email-api
	payload := struct {
		From     string `json:"From"`
		To       string `json:"To"`
		Subject  string `json:"Subject"`
		HTMLBody string `json:"HtmlBody"`
		TextBody string `json:"TextBody"`
	}{
		From:     c.sender,
		To:       sendReq.To.String(),
		Subject:  sendReq.Subject,
		HTMLBody: sendReq.HTMLBody,
		TextBody: sendReq.TextBody,
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/email",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}
	detail := strings.TrimSpace(string(b))

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return serrors.With(serrors.ErrRejected, "provider rejected send (%d): %s", resp.StatusCode, detail)
	}

	return serrors.With(serrors.ErrUnavailable, "provider unavailable (%d): %s", resp.StatusCode, detail)
}

// Ensure Client conforms to the email.Client interface at compile time.
var _ email.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, provider base
// URL, server token and sender address. The http.Client's timeout bounds each
// individual send attempt.
func New(httpClient *http.Client, baseURL, token, sender string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		sender:     sender,
	}
}
