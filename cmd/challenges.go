package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/ptrdojo/internal/exam"
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List the Final Examination challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := exam.NewCatalog(exam.FinalExamChallenges())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tCHALLENGE\tDIFFICULTY\tPOINTS\tLIMIT")
		for _, ch := range catalog.Challenges() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%ds\n",
				ch.Ordinal+1, ch.Title, ch.Difficulty.Label(), ch.Points, ch.TimeLimitSecs)
		}
		return w.Flush()
	},
}
