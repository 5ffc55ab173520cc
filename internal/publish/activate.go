package publish

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/unspsc/internal/sql"
)

// Activate makes releaseID the single active release when activate is set,
// otherwise it only marks the release published. A release that is already
// active stays active either way.
func Activate(ctx context.Context, tx pgx.Tx, log zerolog.Logger, releaseID uuid.UUID, activate bool) error {
	if !activate {
		if err := UpdateStatus(ctx, tx, releaseID, StatusPublished); err != nil {
			return fmt.Errorf("update status to published: %w", err)
		}
		return nil
	}

	// Deactivate first: at most one release may be active at a time.
	tag, err := tx.Exec(ctx, embedsql.DeactivateOtherReleases, releaseID)
	if err != nil {
		return fmt.Errorf("deactivate other releases: %w", err)
	}
	log.Info().Int64("deactivated", tag.RowsAffected()).Msg("older releases deactivated")

	if _, err := tx.Exec(ctx, embedsql.ActivateRelease, releaseID); err != nil {
		return fmt.Errorf("activate release: %w", err)
	}
	log.Info().Str("release_id", releaseID.String()).Msg("release activated")
	return nil
}
