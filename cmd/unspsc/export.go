package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/exitcode"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/internal/model"
	"github.com/gyeh/unspsc/internal/normalize"
	"github.com/gyeh/unspsc/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the registry to a Parquet snapshot",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Output Parquet path (required)")
	_ = exportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.LoadOptional(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}

	entries := cfg.Selected()
	if err := snapshot.Write(cfg.FilePath, model.CodeRows(entries)); err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(exitcode.CopyError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash snapshot")
		os.Exit(exitcode.CopyError)
	}

	log.Info().
		Str("file", cfg.FilePath).
		Int("rows", len(entries)).
		Str("digest", normalize.TableDigest(entries)).
		Msg("export complete")

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d codes to %s (sha256 %s)\n", len(entries), cfg.FilePath, sha)
	return nil
}
