package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"newsletter/pkg/domain"
	"newsletter/pkg/serrors"
)

func TestParseSubscriberName_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"bo manev", "bo manev"},
		{"  Ursula K. Le Guin  ", "Ursula K. Le Guin"},
		{strings.Repeat("a", domain.MaxSubscriberNameLength), strings.Repeat("a", domain.MaxSubscriberNameLength)},
		{"名前", "名前"},
		// 200 characters but 400 bytes; the bound counts characters, not bytes.
		{strings.Repeat("й", 200), strings.Repeat("й", 200)},
		{strings.Repeat("名", domain.MaxSubscriberNameLength), strings.Repeat("名", domain.MaxSubscriberNameLength)},
	}
	for _, tc := range cases {
		got, err := domain.ParseSubscriberName(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got.String())
	}
}

func TestParseSubscriberName_Invalid(t *testing.T) {
	cases := []struct {
		desc string
		in   string
	}{
		{"empty", ""},
		{"whitespace only", "   \t "},
		{"too long", strings.Repeat("a", domain.MaxSubscriberNameLength+1)},
		{"too long multibyte", strings.Repeat("й", domain.MaxSubscriberNameLength+1)},
		{"forward slash", "bo/manev"},
		{"parentheses", "bo (manev)"},
		{"double quote", `bo "manev"`},
		{"angle brackets", "<script>"},
		{"backslash", `bo\manev`},
		{"braces", "{manev}"},
		{"control character", "bo\x00manev"},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := domain.ParseSubscriberName(tc.in)
			require.Error(t, err)
			require.True(t, errors.Is(err, serrors.ErrBadRequest))
		})
	}
}

func TestParseSubscriberEmail_Valid(t *testing.T) {
	for _, in := range []string{
		"bo_manev@gmail.com",
		"ursula.k@le.guin.example",
		"  padded@example.com  ",
	} {
		got, err := domain.ParseSubscriberEmail(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, strings.TrimSpace(in), got.String())
	}
}

func TestParseSubscriberEmail_Invalid(t *testing.T) {
	cases := []struct {
		desc string
		in   string
	}{
		{"empty", ""},
		{"no at symbol", "not-an-email"},
		{"two at symbols", "a@b@example.com"},
		{"missing local part", "@example.com"},
		{"missing domain", "bo@"},
		{"domain without dot", "bo@localhost"},
		{"domain leading dot", "bo@.example.com"},
		{"domain trailing dot", "bo@example.com."},
		{"inner whitespace", "bo manev@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := domain.ParseSubscriberEmail(tc.in)
			require.Error(t, err)
			require.True(t, errors.Is(err, serrors.ErrBadRequest))
		})
	}
}
