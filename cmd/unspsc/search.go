package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/exitcode"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

var searchOffersOnly bool

var searchCmd = &cobra.Command{
	Use:   "search KEYWORD...",
	Short: "Search code descriptions (case-insensitive substring)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchOffersOnly, "offers-only", false, "Only show codes allowed in a RESPONSE")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	keyword := strings.Join(args, " ")
	results := unspsc.Search(keyword)
	if searchOffersOnly {
		results = offerable(results)
	}

	log.Debug().Str("keyword", keyword).Int("matches", len(results)).Msg("search")
	if len(results) == 0 {
		os.Exit(exitcode.NotFound)
	}
	writeEntries(cmd.OutOrStdout(), results)
	return nil
}

func offerable(entries []unspsc.Entry) []unspsc.Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if unspsc.ValidateForMessageType(string(e.Code), unspsc.MessageTypeResponse) {
			out = append(out, e)
		}
	}
	return out
}
