package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/unspsc/internal/exitcode"
	"github.com/gyeh/unspsc/internal/logging"
	"github.com/gyeh/unspsc/pkg/unspsc"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [SEGMENT]",
	Short: "List codes in a segment, or all segments when none is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, seg := range unspsc.Segments() {
			title, _ := unspsc.SegmentTitle(seg)
			policy := "allowed"
			if unspsc.IsRestrictedSegment(seg) {
				policy = "request only"
			}
			fmt.Fprintf(out, "%s  %-40s %3d codes  %s\n", seg, title, len(unspsc.CodesInSegment(seg)), policy)
		}
		return nil
	}

	codes := unspsc.CodesInSegment(args[0])
	if len(codes) == 0 {
		log.Warn().Str("segment", args[0]).Msg("no codes in segment")
		os.Exit(exitcode.NotFound)
	}
	for _, c := range codes {
		desc, _ := unspsc.Lookup(string(c))
		fmt.Fprintf(out, "%s  %s%s\n", c, desc, restrictedMark(string(c)))
	}
	return nil
}
