package snapshot

import (
	"fmt"
	"strconv"

	"github.com/gyeh/unspsc/internal/model"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

// Change is one column of a code whose value differs between snapshot and
// registry.
type Change struct {
	Code     string
	Field    string // parquet column name
	Snapshot string
	Registry string
}

// Diff is the difference between a snapshot and the compiled registry.
type Diff struct {
	Missing    []string // in the registry, absent from the snapshot
	Extra      []string // in the snapshot, unknown to the registry
	Duplicates []string // codes appearing more than once in the snapshot
	Changed    []Change
}

// Empty reports whether the snapshot matches the registry.
func (d *Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 &&
		len(d.Duplicates) == 0 && len(d.Changed) == 0
}

// Verify compares the snapshot at path against want, which is normally the
// selection the snapshot was exported from.
func Verify(path string, want []unspsc.Entry) (*Diff, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if err := ValidateSchema(r.Schema()); err != nil {
		return nil, fmt.Errorf("validate snapshot: %w", err)
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return Compare(rows, want), nil
}

// Compare diffs snapshot rows against want, column by column. Positions are
// expected to follow want order. Output follows want order for missing and
// changed codes and snapshot order for extras and duplicates. A duplicated
// code is compared using its first row.
func Compare(rows []model.CodeRow, want []unspsc.Entry) *Diff {
	d := &Diff{}
	got := make(map[string]model.CodeRow, len(rows))
	seen := make(map[string]int, len(rows))
	for _, r := range rows {
		seen[r.Code]++
		switch seen[r.Code] {
		case 1:
			got[r.Code] = r
		case 2:
			d.Duplicates = append(d.Duplicates, r.Code)
		}
	}
	wanted := make(map[string]bool, len(want))

	for i, e := range want {
		exp := model.NewCodeRow(e, i+1)
		wanted[exp.Code] = true
		r, ok := got[exp.Code]
		if !ok {
			d.Missing = append(d.Missing, exp.Code)
			continue
		}
		d.Changed = append(d.Changed, changes(r, exp)...)
	}
	for _, r := range rows {
		if !wanted[r.Code] && seen[r.Code] > 0 {
			d.Extra = append(d.Extra, r.Code)
			seen[r.Code] = 0
		}
	}
	return d
}

// changes lists the columns where snapshot row r differs from exp.
func changes(r, exp model.CodeRow) []Change {
	cols := []struct {
		field    string
		got, exp string
	}{
		{"segment", r.Segment, exp.Segment},
		{"family", r.Family, exp.Family},
		{"class", r.Class, exp.Class},
		{"description", r.Description, exp.Description},
		{"segment_title", r.SegmentTitle, exp.SegmentTitle},
		{"restricted", strconv.FormatBool(r.Restricted), strconv.FormatBool(exp.Restricted)},
		{"position", strconv.Itoa(int(r.Position)), strconv.Itoa(int(exp.Position))},
	}
	var out []Change
	for _, c := range cols {
		if c.got != c.exp {
			out = append(out, Change{Code: exp.Code, Field: c.field, Snapshot: c.got, Registry: c.exp})
		}
	}
	return out
}
