package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/exitcode"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/internal/normalize"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

var messageType string

var validateCmd = &cobra.Command{
	Use:   "validate CODE...",
	Short: "Check codes against a message type (REQUEST or RESPONSE)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&messageType, "type", "", "Message type: REQUEST or RESPONSE (required)")
	_ = validateCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	mt, err := unspsc.ParseMessageType(messageType)
	if err != nil {
		log.Error().Err(err).Msg("invalid --type")
		os.Exit(exitcode.UsageError)
	}

	if rejected := validateCodes(cmd.OutOrStdout(), normalize.Codes(args), mt); rejected > 0 {
		log.Warn().Int("rejected", rejected).Str("type", mt.String()).Msg("codes not allowed for message type")
		os.Exit(exitcode.PolicyViolation)
	}
	return nil
}
