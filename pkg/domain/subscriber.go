package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"newsletter/pkg/serrors"
)

// SubscriberID uniquely identifies a subscriber.
// It wraps uuid.UUID to provide type safety at the domain layer.
type SubscriberID uuid.UUID

// SubscriberStatus represents the lifecycle state of a subscriber.
// A subscriber starts pending and becomes confirmed once the confirmation
// link is visited; confirmed is terminal.
type SubscriberStatus string

const (
	// StatusPendingConfirmation indicates the subscriber signed up but has not
	// proven control of the email address yet.
	StatusPendingConfirmation SubscriberStatus = "pending_confirmation"
	// StatusConfirmed indicates the subscriber followed the confirmation link
	// and is eligible to receive newsletter issues.
	StatusConfirmed SubscriberStatus = "confirmed"
)

// MaxSubscriberNameLength bounds the accepted length of a subscriber name.
const MaxSubscriberNameLength = 256

// forbiddenNameRunes are characters that must never appear in a subscriber
// name. They are either markup-breaking or SQL/path noise with no legitimate
// use in a person's name.
var forbiddenNameRunes = map[rune]struct{}{ //nolint: gochecknoglobals
	'/': {}, '(': {}, ')': {}, '"': {}, '<': {}, '>': {}, '\\': {}, '{': {}, '}': {},
}

// SubscriberName is a validated subscriber display name. The zero value is
// not valid; use ParseSubscriberName.
type SubscriberName string

// ParseSubscriberName validates raw input and returns a SubscriberName.
// The input is trimmed first; validation fails when the trimmed value is
// empty, longer than MaxSubscriberNameLength, or contains a forbidden or
// control character.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", serrors.With(serrors.ErrBadRequest, "subscriber name must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxSubscriberNameLength {
		return "", serrors.With(serrors.ErrBadRequest,
			"subscriber name must not exceed %d characters", MaxSubscriberNameLength)
	}
	for _, r := range trimmed {
		if _, forbidden := forbiddenNameRunes[r]; forbidden || unicode.IsControl(r) {
			return "", serrors.With(serrors.ErrBadRequest,
				"subscriber name contains forbidden character %q", r)
		}
	}

	return SubscriberName(trimmed), nil
}

// String returns the validated name.
func (n SubscriberName) String() string { return string(n) }

// SubscriberEmail is a validated email address. The zero value is not valid;
// use ParseSubscriberEmail.
type SubscriberEmail string

// ParseSubscriberEmail validates raw input against structural email rules:
// exactly one '@', a non-empty local part, a non-empty domain containing at
// least one '.', and no whitespace anywhere.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", serrors.With(serrors.ErrBadRequest, "email must not be empty")
	}
	if strings.ContainsFunc(trimmed, unicode.IsSpace) {
		return "", serrors.With(serrors.ErrBadRequest, "email must not contain whitespace")
	}
	local, dom, found := strings.Cut(trimmed, "@")
	if !found || strings.Contains(dom, "@") {
		return "", serrors.With(serrors.ErrBadRequest, "email must contain exactly one '@'")
	}
	if local == "" {
		return "", serrors.With(serrors.ErrBadRequest, "email local part must not be empty")
	}
	if dom == "" || !strings.Contains(dom, ".") || strings.HasPrefix(dom, ".") || strings.HasSuffix(dom, ".") {
		return "", serrors.With(serrors.ErrBadRequest, "email domain is malformed")
	}

	return SubscriberEmail(trimmed), nil
}

// String returns the validated address.
func (e SubscriberEmail) String() string { return string(e) }

// NewSubscriber pairs a validated email and name. It is the only form in
// which subscriber identity may be referenced before persistence.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}

// Subscriber represents a persisted subscriber record and its current state.
type Subscriber struct {
	// ID is the unique identifier of the subscriber.
	ID SubscriberID `json:"id"`
	// Email is the subscriber's validated email address.
	Email SubscriberEmail `json:"email"`
	// Name is the subscriber's validated display name.
	Name SubscriberName `json:"name"`
	// Status is the current lifecycle state of the subscriber.
	Status SubscriberStatus `json:"status"`
	// SubscribedAt is the time the subscription request was stored.
	SubscribedAt time.Time `json:"subscribedAt"`
}
