package normalize

import (
	"regexp"
	"strings"
)

var codeSeparators = regexp.MustCompile(`[\s.\-_/]`)

// Code trims whitespace and strips the separators people type between code
// levels, e.g. "50-20-15-06" or "5020 1506". Anything else is left in place
// so that registry lookup still rejects it.
func Code(s string) string {
	return codeSeparators.ReplaceAllString(strings.TrimSpace(s), "")
}

// Codes normalizes each input in place order. Inputs that end up empty are
// kept as "" so callers report them as unknown rather than skip them.
func Codes(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Code(s)
	}
	return out
}
