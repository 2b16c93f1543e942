package internal

import "strings"

// LooksLikeEmail reports whether a free-text contact field plausibly holds
// an email address. The contact field accepts anything (phone numbers,
// usernames), so this is intentionally a loose heuristic rather than a
// validation: a value containing both '@' and '.' is treated as mailable.
func LooksLikeEmail(contact string) bool {
	return strings.Contains(contact, "@") && strings.Contains(contact, ".")
}
