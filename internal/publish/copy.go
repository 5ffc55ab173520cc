package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/gyeh/unspsc/internal/db"
	"github.com/gyeh/unspsc/internal/model"
	embedsql "github.com/gyeh/unspsc/internal/sql"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

const copyBufferSize = 256

// CopyResult holds metrics from the copy phase.
type CopyResult struct {
	RowsCopied int64
	Duration   time.Duration
}

// Copy replaces the codes of releaseID within tx: existing rows are deleted,
// then entries are flattened and COPY-loaded into ref.unspsc_codes via a
// channel-backed CopyFromSource.
func Copy(ctx context.Context, tx pgx.Tx, log zerolog.Logger, releaseID uuid.UUID, entries []unspsc.Entry) (*CopyResult, error) {
	start := time.Now()

	tag, err := tx.Exec(ctx, embedsql.DeleteReleaseCodes, releaseID)
	if err != nil {
		return nil, fmt.Errorf("delete release codes: %w", err)
	}
	if n := tag.RowsAffected(); n > 0 {
		log.Info().Int64("rows_deleted", n).Msg("replacing existing release codes")
	}

	ch := make(chan *model.CodeRow, copyBufferSize)
	errCh := make(chan error, 1)

	// Producer goroutine: flatten entries → push to channel
	go func() {
		defer close(ch)
		for i, e := range entries {
			row := model.NewCodeRow(e, i+1)
			select {
			case ch <- &row:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		errCh <- nil
	}()

	source := db.NewChannelSource(releaseID, ch)
	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"ref", "unspsc_codes"},
		db.Columns(),
		source,
	)

	// CopyFrom may stop early on error; drain so the producer can exit.
	for range ch {
	}
	if prodErr := <-errCh; prodErr != nil {
		return nil, fmt.Errorf("copy producer: %w", prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("copy codes: %w", err)
	}
	if copied != int64(len(entries)) {
		return nil, fmt.Errorf("copy codes: copied %d of %d rows", copied, len(entries))
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_copied", copied).
		Str("duration", dur.String()).
		Msg("copy complete")

	return &CopyResult{RowsCopied: copied, Duration: dur}, nil
}
