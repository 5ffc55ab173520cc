package unspsc

import (
	"errors"
	"fmt"
)

// IntegrityError describes one inconsistency in the registry data.
type IntegrityError struct {
	Key     string // offending code or segment
	Problem string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("unspsc: %s: %s", e.Key, e.Problem)
}

// CheckIntegrity verifies the compiled registry: every key is 8 decimal
// digits and unique, every description is non-empty, and every segment in
// use is either restricted or allowed, never both. A non-nil result joins
// one *IntegrityError per violation.
func CheckIntegrity() error {
	return checkEntries(table, restrictedSegments, allowedSegments)
}

func checkEntries(entries []Entry, restricted, allowed map[string]bool) error {
	var errs []error
	fail := func(key, format string, args ...any) {
		errs = append(errs, &IntegrityError{Key: key, Problem: fmt.Sprintf(format, args...)})
	}

	for seg := range restricted {
		if allowed[seg] {
			fail(seg, "segment is both restricted and allowed")
		}
	}

	seen := make(map[Code]bool, len(entries))
	checkedSegments := make(map[string]bool)
	for _, e := range entries {
		key := string(e.Code)
		if !isDigits(key, CodeLen) {
			fail(key, "code must be %d decimal digits", CodeLen)
		}
		if seen[e.Code] {
			fail(key, "duplicate code")
		}
		seen[e.Code] = true
		if e.Description == "" {
			fail(key, "empty description")
		}

		seg := Segment(key)
		if checkedSegments[seg] {
			continue
		}
		checkedSegments[seg] = true
		if !restricted[seg] && !allowed[seg] {
			fail(seg, "segment is neither restricted nor allowed")
		}
	}

	return errors.Join(errs...)
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
