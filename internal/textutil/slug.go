package textutil

import "strings"

// Slug converts a filename to a lowercase hyphenated identifier. The last
// extension is stripped, letters are lowercased, and every maximal run of
// characters outside [a-z0-9] collapses to a single hyphen. Leading and
// trailing hyphens are trimmed.
func Slug(filename string) string {
	if idx := strings.LastIndexByte(filename, '.'); idx >= 0 {
		filename = filename[:idx]
	}
	var b strings.Builder
	b.Grow(len(filename))
	pendingHyphen := false
	for _, r := range strings.ToLower(filename) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
