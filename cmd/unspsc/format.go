package main

import (
	"fmt"
	"io"

	"github.com/gyeh/unspsc/pkg/unspsc"
)

func writeEntries(w io.Writer, entries []unspsc.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s%s\n", e.Code, e.Description, restrictedMark(string(e.Code)))
	}
}

// writeDescribe prints one code's full breakdown. It reports false for an
// unknown code.
func writeDescribe(w io.Writer, code string) bool {
	desc, ok := unspsc.Lookup(code)
	if !ok {
		fmt.Fprintf(w, "%s  (unknown code)\n", displayCode(code))
		return false
	}
	seg := unspsc.Segment(code)
	title, _ := unspsc.SegmentTitle(seg)

	fmt.Fprintf(w, "Code:        %s\n", code)
	fmt.Fprintf(w, "Description: %s\n", desc)
	fmt.Fprintf(w, "Segment:     %s  %s\n", seg, title)
	fmt.Fprintf(w, "Family:      %s\n", unspsc.Family(code))
	fmt.Fprintf(w, "Class:       %s\n", unspsc.Class(code))
	fmt.Fprintf(w, "Restricted:  %t\n", unspsc.IsRestricted(code))
	return true
}

// describeCodes prints each code's breakdown, separated by blank lines, and
// returns how many were unknown.
func describeCodes(w io.Writer, codes []string) (missing int) {
	for i, code := range codes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if !writeDescribe(w, code) {
			missing++
		}
	}
	return missing
}

// validateCodes prints one verdict line per code and returns how many were
// not allowed for mt.
func validateCodes(w io.Writer, codes []string, mt unspsc.MessageType) (rejected int) {
	for _, code := range codes {
		v := unspsc.Explain(code, mt)
		fmt.Fprintf(w, "%s  %s  %s\n", displayCode(code), mt, v)
		if v != unspsc.VerdictAllowed {
			rejected++
		}
	}
	return rejected
}

// displayCode makes an argument that normalized to nothing visible.
func displayCode(code string) string {
	if code == "" {
		return `""`
	}
	return code
}

func restrictedMark(code string) string {
	if unspsc.IsRestricted(code) {
		return "  [request only]"
	}
	return ""
}
