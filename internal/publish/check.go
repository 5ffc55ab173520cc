package publish

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/unspsc/internal/config"
	"github.com/gyeh/unspsc/internal/normalize"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

// CheckResult holds the validated selection to publish.
type CheckResult struct {
	// Entries is the selection from config, in registry order.
	Entries []unspsc.Entry
	// Digest is normalize.TableDigest over Entries; it identifies a release.
	Digest   string
	Duration time.Duration
}

// Check verifies registry integrity and resolves the configured selection.
func Check(log zerolog.Logger, cfg *config.Config) (*CheckResult, error) {
	start := time.Now()

	if err := unspsc.CheckIntegrity(); err != nil {
		return nil, fmt.Errorf("registry integrity: %w", err)
	}

	entries := cfg.Selected()
	if len(entries) == 0 {
		return nil, fmt.Errorf("selection is empty (segments=%v, exclude_restricted=%t)",
			cfg.Segments, cfg.ExcludeRestricted)
	}

	digest := normalize.TableDigest(entries)
	dur := time.Since(start)

	log.Info().
		Int("entries", len(entries)).
		Strs("segments", cfg.Segments).
		Str("digest", digest).
		Dur("duration", dur).
		Msg("check complete")

	return &CheckResult{Entries: entries, Digest: digest, Duration: dur}, nil
}
