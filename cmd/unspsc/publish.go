package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/db"
	"github.com/gyeh/unspsc/internal/exitcode"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the registry to Postgres as a release",
	RunE:  runPublish,
}

func init() {
	f := publishCmd.Flags()
	f.BoolVar(&cfg.Activate, "activate", false, "Mark this release as the active one")
	f.BoolVar(&cfg.Force, "force", false, "Republish even if a release with the same digest exists")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.LoadOptional(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := publish.Run(ctx, pool, log, &cfg)
	if err != nil {
		var pe *publish.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("publish failed")
			switch pe.Phase {
			case publish.PhaseCheck:
				os.Exit(exitcode.ValidationError)
			case publish.PhaseCopy:
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.PublishError)
			}
		}
		log.Error().Err(err).Msg("publish failed")
		os.Exit(exitcode.PublishError)
	}

	if summary.AlreadyPublished {
		fmt.Fprintf(cmd.OutOrStdout(), "Release %s already published (%d codes)\n",
			summary.ReleaseID, summary.RowsSelected)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Publish complete: release %s, %d codes (%.1fs)\n",
		summary.ReleaseID, summary.RowsCopied, summary.DurationTotal.Seconds())
	return nil
}
