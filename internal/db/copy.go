package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/unspsc/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading CodeRows from a
// channel, prefixing each with the release they belong to.
type ChannelSource struct {
	ch        <-chan *model.CodeRow
	releaseID uuid.UUID
	current   *model.CodeRow
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(releaseID uuid.UUID, ch <-chan *model.CodeRow) *ChannelSource {
	return &ChannelSource{ch: ch, releaseID: releaseID}
}

// Columns returns the COPY column list matching Values.
func Columns() []string {
	return append([]string{"release_id"}, model.CodeRowColumns()...)
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	return true
}

// Values returns the current row's values in Columns order.
func (s *ChannelSource) Values() ([]any, error) {
	return append([]any{s.releaseID}, s.current.CopyValues()...), nil
}

// Err always returns nil; producers report failures on their own channel.
func (s *ChannelSource) Err() error {
	return nil
}

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
