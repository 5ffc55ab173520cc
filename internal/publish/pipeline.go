package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/unspsc/internal/config"
	"github.com/gyeh/unspsc/internal/model"
)

// Pipeline phases, reported in PipelineError.Phase.
const (
	PhaseCheck    = "check"
	PhaseRegister = "register"
	PhaseCopy     = "copy"
	PhaseActivate = "activate"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run publishes the selected registry entries as a release:
// check → register → copy → activate.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.PublishSummary, error) {
	totalStart := time.Now()

	// Phase 1: Check
	chk, err := Check(log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseCheck, Err: err}
	}

	// Phase 2: Register
	rel, err := Register(ctx, pool, chk, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseRegister, Err: err}
	}

	if rel.AlreadyPublished {
		log.Info().
			Str("release_id", rel.ReleaseID.String()).
			Str("digest", chk.Digest).
			Msg("registry already published, skipping (use --force to republish)")
		return &model.PublishSummary{
			ReleaseID:        rel.ReleaseID.String(),
			TableDigest:      chk.Digest,
			AlreadyPublished: true,
			RowsSelected:     int64(len(chk.Entries)),
			DurationCheck:    chk.Duration,
			DurationTotal:    time.Since(totalStart),
		}, nil
	}

	// Phase 3+4: Copy and Activate commit together, so a failed republish
	// leaves the previous codes and status in place.
	if !rel.Republish {
		if err := UpdateStatus(ctx, pool, rel.ReleaseID, StatusCopying); err != nil {
			return nil, &PipelineError{Phase: PhaseCopy, Err: err}
		}
	}
	activate := cfg.Activate || rel.WasActive
	var cp *CopyResult
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var err error
		if cp, err = Copy(ctx, tx, log, rel.ReleaseID, chk.Entries); err != nil {
			return &PipelineError{Phase: PhaseCopy, Err: err}
		}
		if err := Activate(ctx, tx, log, rel.ReleaseID, activate); err != nil {
			return &PipelineError{Phase: PhaseActivate, Err: err}
		}
		return nil
	})
	if err != nil {
		if !rel.Republish {
			_ = UpdateStatus(ctx, pool, rel.ReleaseID, StatusFailed)
		}
		var pe *PipelineError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, &PipelineError{Phase: PhaseActivate, Err: fmt.Errorf("commit: %w", err)}
	}

	summary := &model.PublishSummary{
		ReleaseID:     rel.ReleaseID.String(),
		TableDigest:   chk.Digest,
		Activated:     activate,
		RowsSelected:  int64(len(chk.Entries)),
		RowsCopied:    cp.RowsCopied,
		DurationCheck: chk.Duration,
		DurationCopy:  cp.Duration,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Str("release_id", summary.ReleaseID).
		Int64("rows_copied", summary.RowsCopied).
		Bool("activated", summary.Activated).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("publish complete")

	return summary, nil
}
