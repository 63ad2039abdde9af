package cognidb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractCookie(t *testing.T) {
	headers := []string{
		"csrf=abc; Path=/; HttpOnly",
		"session=s3cr3t; Domain=cloud.cognidb.com; Path=/; Secure",
		"trace=xyz",
	}

	v, ok := extractCookie(headers, "session")
	require.True(t, ok)
	require.Equal(t, "s3cr3t", v)

	v, ok = extractCookie(headers, "csrf")
	require.True(t, ok)
	require.Equal(t, "abc", v)

	v, ok = extractCookie(headers, "trace")
	require.True(t, ok)
	require.Equal(t, "xyz", v)
}

func TestExtractCookieAbsent(t *testing.T) {
	_, ok := extractCookie([]string{"csrf=abc; Path=/"}, "session")
	require.False(t, ok)

	_, ok = extractCookie(nil, "session")
	require.False(t, ok)

	// Attribute values never match, only the leading name does.
	_, ok = extractCookie([]string{"csrf=abc; session=nope"}, "session")
	require.False(t, ok)
}

func TestExtractCookieCaseSensitive(t *testing.T) {
	_, ok := extractCookie([]string{"Session=abc; Path=/"}, "session")
	require.False(t, ok)
}

func TestExtractCookieFirstMatchWins(t *testing.T) {
	headers := []string{
		"session=first; Path=/",
		"session=second; Path=/",
	}
	v, ok := extractCookie(headers, "session")
	require.True(t, ok)
	require.Equal(t, "first", v)
}

func TestExtractCookieMalformedHeader(t *testing.T) {
	_, ok := extractCookie([]string{"no-equals-here", ""}, "session")
	require.False(t, ok)
}
