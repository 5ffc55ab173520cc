package unspsc

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Prefix lengths of the code hierarchy.
const (
	SegmentLen = 2
	FamilyLen  = 4
	ClassLen   = 6
	CodeLen    = 8
)

// Code is an 8-digit classification code laid out as
// segment (2) / family (4) / class (6) / commodity (8).
type Code string

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// Entry is a single code and its description.
type Entry struct {
	Code        Code
	Description string
}

// Built once at init and never written afterwards, so every exported
// function is safe for concurrent use.
var (
	index   = buildIndex(table)
	lowered = lowerDescriptions(table)
)

// buildIndex maps each code to its position in entries. The first occurrence
// wins; duplicates are reported by CheckIntegrity.
func buildIndex(entries []Entry) map[Code]int {
	idx := make(map[Code]int, len(entries))
	for i, e := range entries {
		if _, dup := idx[e.Code]; !dup {
			idx[e.Code] = i
		}
	}
	return idx
}

// lowerDescriptions lower-cases each description. Lower-casing rather than
// full case folding keeps "ß" and "ſ" distinct from "ss" and "s".
func lowerDescriptions(entries []Entry) []string {
	// cases.Caser is stateful; never share one across goroutines.
	c := cases.Lower(language.Und)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = c.String(e.Description)
	}
	return out
}

// Lookup returns the description for code. Input that is not an exact
// 8-character registry key, malformed or unknown alike, returns ok=false.
func Lookup(code string) (description string, ok bool) {
	if len(code) != CodeLen {
		return "", false
	}
	i, ok := index[Code(code)]
	if !ok {
		return "", false
	}
	return table[i].Description, true
}

// Contains reports whether code is a registry key.
func Contains(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Segment returns the first two characters of code.
// Shorter input is returned as-is.
func Segment(code string) string {
	return prefix(code, SegmentLen)
}

// Family returns the first four characters of code.
func Family(code string) string {
	return prefix(code, FamilyLen)
}

// Class returns the first six characters of code.
func Class(code string) string {
	return prefix(code, ClassLen)
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// IsRestricted reports whether code falls in a professional-service segment.
// It does not check registry membership.
func IsRestricted(code string) bool {
	return IsRestrictedSegment(Segment(code))
}

// CodesInSegment returns every registry code whose segment equals segment,
// in registry order. The result is never nil.
func CodesInSegment(segment string) []Code {
	codes := make([]Code, 0)
	for _, e := range table {
		if Segment(string(e.Code)) == segment {
			codes = append(codes, e.Code)
		}
	}
	return codes
}

// Search returns the entries whose description contains keyword, both sides
// lower-cased, in registry order. An empty keyword matches everything.
func Search(keyword string) []Entry {
	needle := cases.Lower(language.Und).String(keyword)
	matches := make([]Entry, 0)
	for i, e := range table {
		if strings.Contains(lowered[i], needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

// All returns a copy of the registry in registry order.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Len returns the number of registry entries.
func Len() int {
	return len(table)
}
