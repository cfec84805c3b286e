package render

import "strings"

// NormalizePath strips a single leading "./" from p for display. Any
// other path, including "../" prefixes, is returned unchanged.
func NormalizePath(p string) string {
	if strings.HasPrefix(p, "./") {
		return p[2:]
	}
	return p
}
