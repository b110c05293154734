package cli

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/mithrel/lovelog/internal/stats"
)

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags [pattern]",
		Short: "Show tag usage, optionally fuzzy-filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			counts := stats.TagHistogram(app.Book.Entries())

			// Custom tags from settings show up even when unused.
			for _, t := range app.Cfg.GetStringSlice("custom_tags") {
				if _, ok := counts[t]; !ok {
					counts[t] = 0
				}
			}

			names := make([]string, 0, len(counts))
			for t := range counts {
				names = append(names, t)
			}
			if len(args) == 1 {
				matches := fuzzy.Find(args[0], names)
				names = names[:0]
				for _, m := range matches {
					names = append(names, m.Str)
				}
			} else {
				sort.Slice(names, func(i, j int) bool {
					if counts[names[i]] != counts[names[j]] {
						return counts[names[i]] > counts[names[j]]
					}
					return names[i] < names[j]
				})
			}

			for _, t := range names {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d\n", t, counts[t])
			}
			return nil
		},
	}
	return cmd
}
