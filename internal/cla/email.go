package cla

import "strings"

// CleanEmail normalizes an email for matching: surrounding whitespace is
// trimmed and the address is lowercased.
func CleanEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomain extracts the normalized domain from an email (the part after the
// last "@").
func EmailDomain(email string) string {
	parts := strings.Split(email, "@")

	return CleanEmail(parts[len(parts)-1])
}
