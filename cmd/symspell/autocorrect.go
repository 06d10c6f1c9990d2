package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symspell"
)

var autocorrectMinConfidence float64

var autocorrectCmd = &cobra.Command{
	Use:   "autocorrect [word]",
	Short: "Auto-correct a single word with a confidence score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		var opts []symspell.AutoCorrectOption
		if autocorrectMinConfidence > 0 {
			opts = append(opts, symspell.WithMinConfidence(autocorrectMinConfidence))
		}

		result, corrected := e.AutoCorrect(args[0], opts...)
		if !corrected {
			fmt.Printf("%s\tunchanged\n", args[0])
			return nil
		}
		fmt.Printf("%s\t%.2f\n", result.Term, result.Confidence)
		return nil
	},
}

func init() {
	autocorrectCmd.Flags().Float64Var(&autocorrectMinConfidence, "min-confidence", 0, "override the confidence floor a correction must clear (0 uses the configured default)")
}
