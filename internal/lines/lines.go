// Package lines splits freeform multi-line text (mods, socials) into entries.
package lines

import "strings"

// Parse splits text on "\n" or "\r\n", trims surrounding whitespace from each
// piece and drops empty pieces. Order is preserved. The result is never nil.
func Parse(text string) []string {
	out := []string{}
	for _, piece := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(strings.TrimSuffix(piece, "\r")); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Join is the inverse of Parse: Parse(Join(Parse(x))) equals Parse(x).
func Join(entries []string) string {
	return strings.Join(entries, "\n")
}
