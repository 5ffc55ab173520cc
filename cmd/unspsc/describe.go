package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/exitcode"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/internal/normalize"
)

var describeCmd = &cobra.Command{
	Use:   "describe CODE...",
	Short: "Show description and hierarchy of codes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if missing := describeCodes(cmd.OutOrStdout(), normalize.Codes(args)); missing > 0 {
		log.Warn().Int("unknown", missing).Msg("some codes are not in the registry")
		os.Exit(exitcode.NotFound)
	}
	return nil
}
