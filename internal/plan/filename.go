package plan

import "strings"

// reserved covers path separators plus the characters Windows refuses in
// file names; downloads land on either platform.
const reserved = `/\<>:"|?*`

// SanitizeFileName strips path separators, reserved punctuation and control
// characters from a display name so it is safe as a local file name.
// Leading/trailing dots and spaces are trimmed; the caller supplies a
// fallback when nothing survives.
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			// drop control characters
		case strings.ContainsRune(reserved, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	s := strings.TrimSpace(b.String())
	s = strings.Trim(s, ".")
	return strings.TrimSpace(s)
}
