package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/exitcode"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify registry integrity (code shape, uniqueness, segment policy)",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := unspsc.CheckIntegrity(); err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				log.Error().Err(e).Msg("integrity violation")
			}
		} else {
			log.Error().Err(err).Msg("integrity violation")
		}
		os.Exit(exitcode.ValidationError)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registry OK: %d codes in %d segments (%d restricted)\n",
		unspsc.Len(), len(unspsc.Segments()), len(unspsc.RestrictedSegments()))
	return nil
}
