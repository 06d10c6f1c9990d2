package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symspell"
)

var (
	compoundMaxEditDist    int
	compoundTransferCasing bool
)

var compoundCmd = &cobra.Command{
	Use:   "compound [phrase]",
	Short: "Correct each whitespace-separated token of a phrase independently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		var opts []symspell.CompoundOption
		if compoundMaxEditDist > 0 {
			opts = append(opts, symspell.WithCompoundMaxEditDistance(compoundMaxEditDist))
		}
		if compoundTransferCasing {
			opts = append(opts, symspell.WithCompoundTransferCasing())
		}

		result := e.LookupCompound(args[0], opts...)
		fmt.Printf("%s\t%d\n", result.Corrected, result.Distance)
		return nil
	},
}

func init() {
	compoundCmd.Flags().IntVar(&compoundMaxEditDist, "max-edit-distance", 0, "override the configured max edit distance (0 uses the configured default)")
	compoundCmd.Flags().BoolVar(&compoundTransferCasing, "transfer-casing", false, "reapply each token's casing pattern onto its correction")
}
