package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symspell"
)

var (
	segmentMaxEditDist   int
	segmentBeamWidth     int
	segmentMaxSegmentLen int
)

var segmentCmd = &cobra.Command{
	Use:   "segment [text]",
	Short: "Split a run of concatenated words and correct each segment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		var opts []symspell.SegmentOption
		if segmentMaxEditDist > 0 {
			opts = append(opts, symspell.WithSegmentMaxEditDistance(segmentMaxEditDist))
		}
		if segmentBeamWidth > 0 {
			opts = append(opts, symspell.WithBeamWidth(segmentBeamWidth))
		}
		if segmentMaxSegmentLen > 0 {
			opts = append(opts, symspell.WithMaxSegmentLen(segmentMaxSegmentLen))
		}

		result := e.Segment(args[0], opts...)
		fmt.Printf("segmented: %s\n", result.Segmented)
		fmt.Printf("corrected: %s\n", result.Corrected)
		fmt.Printf("distance_sum: %d\n", result.DistanceSum)
		fmt.Printf("log_prob_sum: %f\n", result.LogProbSum)
		return nil
	},
}

func init() {
	segmentCmd.Flags().IntVar(&segmentMaxEditDist, "max-edit-distance", 0, "override the per-segment max edit distance (0 uses the configured default)")
	segmentCmd.Flags().IntVar(&segmentBeamWidth, "beam-width", 0, "override the number of hypotheses retained per beam step (0 uses the configured default)")
	segmentCmd.Flags().IntVar(&segmentMaxSegmentLen, "max-segment-len", 0, "override the longest candidate segment length (0 uses the configured default)")
}
