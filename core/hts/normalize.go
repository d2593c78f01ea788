// Package hts implements HTS code normalization and hierarchical table
// matching.
package hts

import "strings"

// Normalize reduces an HTS code to its bare digit sequence. Punctuation,
// letters and whitespace are discarded; digit order is preserved. A code
// with no digits normalizes to the empty string. Normalization is
// idempotent.
func Normalize(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
