package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/ptrdojo/internal/curriculum"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the available lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tLESSON\tSECTIONS\tQUIZ")
		for _, topic := range curriculum.AllTopics() {
			for _, l := range curriculum.ByTopic(topic) {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
					curriculum.TopicDisplayName(topic), l.Title, len(l.Sections), len(l.Quiz))
			}
		}
		return w.Flush()
	},
}
