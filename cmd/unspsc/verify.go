package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/exitcode"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/internal/snapshot"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Compare a Parquet snapshot with the compiled registry (no writes)",
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Parquet snapshot to verify (required)")
	_ = verifyCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateReadable(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.LoadOptional(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}

	diff, err := snapshot.Verify(cfg.FilePath, cfg.Selected())
	if err != nil {
		log.Error().Err(err).Msg("verify failed")
		os.Exit(exitcode.ValidationError)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== unspsc verify ===")
	fmt.Fprintf(out, "File:    %s\n", cfg.FilePath)
	fmt.Fprintf(out, "Missing: %d\n", len(diff.Missing))
	for _, c := range diff.Missing {
		fmt.Fprintf(out, "  - %s\n", c)
	}
	fmt.Fprintf(out, "Extra:   %d\n", len(diff.Extra))
	for _, c := range diff.Extra {
		fmt.Fprintf(out, "  + %s\n", c)
	}
	fmt.Fprintf(out, "Duplicate: %d\n", len(diff.Duplicates))
	for _, c := range diff.Duplicates {
		fmt.Fprintf(out, "  * %s\n", c)
	}
	fmt.Fprintf(out, "Changed: %d\n", len(diff.Changed))
	for _, ch := range diff.Changed {
		fmt.Fprintf(out, "  ~ %s  %s: %q → %q\n", ch.Code, ch.Field, ch.Snapshot, ch.Registry)
	}

	if !diff.Empty() {
		os.Exit(exitcode.ValidationError)
	}
	fmt.Fprintln(out, "Snapshot matches registry: OK")
	return nil
}
