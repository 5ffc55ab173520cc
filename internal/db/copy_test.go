package db

import (
	"testing"

	"github.com/google/uuid"

	"github.com/gyeh/unspsc/internal/model"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

func TestChannelSource(t *testing.T) {
	rows := model.CodeRows(unspsc.All()[:3])
	ch := make(chan *model.CodeRow, len(rows))
	for i := range rows {
		ch <- &rows[i]
	}
	close(ch)

	id := uuid.New()
	src := NewChannelSource(id, ch)
	n := 0
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		if len(vals) != len(Columns()) {
			t.Fatalf("expected %d values, got %d", len(Columns()), len(vals))
		}
		if vals[0] != id {
			t.Errorf("expected release id first, got %v", vals[0])
		}
		if vals[1] != rows[n].Code {
			t.Errorf("row %d: expected code %s, got %v", n, rows[n].Code, vals[1])
		}
		n++
	}
	if n != len(rows) {
		t.Errorf("expected %d rows, got %d", len(rows), n)
	}
	if src.Err() != nil {
		t.Errorf("unexpected Err: %v", src.Err())
	}
}
