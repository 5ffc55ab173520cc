package model

import (
	"github.com/gyeh/unspsc/pkg/unspsc"
)

// CodeRow is the flattened form of a registry entry, shared by the Parquet
// snapshot and the Postgres COPY into ref.unspsc_codes.
type CodeRow struct {
	Code         string `parquet:"code"`
	Segment      string `parquet:"segment"`
	Family       string `parquet:"family"`
	Class        string `parquet:"class"`
	Description  string `parquet:"description"`
	SegmentTitle string `parquet:"segment_title,optional"`
	Restricted   bool   `parquet:"restricted"`
	Position     int32  `parquet:"position"` // registry order, 1-based
}

// NewCodeRow flattens e, recording its 1-based registry position.
func NewCodeRow(e unspsc.Entry, position int) CodeRow {
	code := string(e.Code)
	title, _ := unspsc.SegmentTitle(unspsc.Segment(code))
	return CodeRow{
		Code:         code,
		Segment:      unspsc.Segment(code),
		Family:       unspsc.Family(code),
		Class:        unspsc.Class(code),
		Description:  e.Description,
		SegmentTitle: title,
		Restricted:   unspsc.IsRestricted(code),
		Position:     int32(position),
	}
}

// CodeRows flattens entries in order.
func CodeRows(entries []unspsc.Entry) []CodeRow {
	rows := make([]CodeRow, len(entries))
	for i, e := range entries {
		rows[i] = NewCodeRow(e, i+1)
	}
	return rows
}

// CodeRowColumns returns the COPY column names, excluding release_id which
// is prepended by the publisher.
func CodeRowColumns() []string {
	return []string{
		"code", "segment", "family", "class",
		"description", "segment_title", "restricted", "position",
	}
}

// CopyValues returns the row's values in CodeRowColumns order.
func (r *CodeRow) CopyValues() []any {
	var title any
	if r.SegmentTitle != "" {
		title = r.SegmentTitle
	}
	return []any{
		r.Code, r.Segment, r.Family, r.Class,
		r.Description, title, r.Restricted, r.Position,
	}
}
