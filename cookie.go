package cognidb

import "strings"

// extractCookie returns the value of the named cookie from a list of raw
// Set-Cookie header values. Each header is a semicolon-separated attribute
// list whose first attribute is name=value; the remaining attributes
// (Domain, Path, Expires, ...) are ignored. The name comparison is
// case-sensitive. The second return value reports whether the cookie was
// found.
func extractCookie(headers []string, name string) (string, bool) {
	for _, h := range headers {
		first, _, _ := strings.Cut(h, ";")
		k, v, ok := strings.Cut(first, "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(k) == name {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
