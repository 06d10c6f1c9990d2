package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symspell"
)

var (
	lookupVerbosity      string
	lookupMaxEditDist    int
	lookupPreviousWord   string
	lookupTransferCasing bool
	lookupIncludeUnknown bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [word]",
	Short: "Look up ranked spelling suggestions for a single word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine()
		if err != nil {
			return err
		}
		defer e.Close()

		opts := []symspell.LookupOption{WithVerbosityFlag(lookupVerbosity)}
		if lookupTransferCasing {
			opts = append(opts, symspell.WithTransferCasing())
		}
		if lookupIncludeUnknown {
			opts = append(opts, symspell.WithIncludeUnknown())
		}
		if lookupMaxEditDist > 0 {
			opts = append(opts, symspell.WithMaxEditDistance(lookupMaxEditDist))
		}
		if lookupPreviousWord != "" {
			opts = append(opts, symspell.WithPreviousWord(lookupPreviousWord))
		}

		results, err := e.Lookup(args[0], opts...)
		if err != nil {
			return err
		}
		for _, item := range results {
			fmt.Printf("%s\t%d\t%d\n", item.Term, item.Distance, item.Count)
		}
		return nil
	},
}

// WithVerbosityFlag maps the --verbosity flag's string value onto the
// option constructor, defaulting to Top for an unrecognized or empty value.
func WithVerbosityFlag(v string) symspell.LookupOption {
	switch v {
	case "closest":
		return symspell.WithVerbosity(symspell.Closest)
	case "all":
		return symspell.WithVerbosity(symspell.All)
	default:
		return symspell.WithVerbosity(symspell.Top)
	}
}

func init() {
	lookupCmd.Flags().StringVar(&lookupVerbosity, "verbosity", "top", "top, closest, or all")
	lookupCmd.Flags().IntVar(&lookupMaxEditDist, "max-edit-distance", 0, "override the configured max edit distance (0 uses the configured default)")
	lookupCmd.Flags().StringVar(&lookupPreviousWord, "previous-word", "", "previous word in the phrase, for bigram-aware ranking")
	lookupCmd.Flags().BoolVar(&lookupTransferCasing, "transfer-casing", false, "reapply the input's casing pattern to each suggestion")
	lookupCmd.Flags().BoolVar(&lookupIncludeUnknown, "include-unknown", false, "include the original word in the results even when no suggestion is found")
}
