package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/lovelog/internal/stats"
)

func newStatsCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show derived statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			entries := app.Book.Entries()
			loc := app.Book.Location()
			now := time.Now().In(loc)
			if year == 0 {
				year = now.Year()
			}
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "Total entries:   %d\n", len(entries))
			_, _ = fmt.Fprintf(out, "Active days:     %d\n", len(stats.UniqueDays(entries)))
			_, _ = fmt.Fprintf(out, "Current streak:  %d\n", stats.CurrentStreak(entries, now))
			_, _ = fmt.Fprintf(out, "Longest streak:  %d\n", stats.LongestStreak(entries))
			_, _ = fmt.Fprintf(out, "Busiest day:     %d entries\n", stats.DailyMax(entries))

			_, _ = fmt.Fprintf(out, "\nMonthly (%d):\n", year)
			monthly := stats.MonthlyHistogram(entries, year, loc)
			months := make([]string, 0, len(monthly))
			for m := range monthly {
				months = append(months, m)
			}
			sort.Strings(months)
			for _, m := range months {
				_, _ = fmt.Fprintf(out, "  %s  %d\n", m, monthly[m])
			}

			tagCounts := stats.TagHistogram(entries)
			if len(tagCounts) > 0 {
				_, _ = fmt.Fprintln(out, "\nTags:")
				type tc struct {
					tag string
					n   int
				}
				sorted := make([]tc, 0, len(tagCounts))
				for t, n := range tagCounts {
					sorted = append(sorted, tc{t, n})
				}
				sort.Slice(sorted, func(i, j int) bool {
					if sorted[i].n != sorted[j].n {
						return sorted[i].n > sorted[j].n
					}
					return sorted[i].tag < sorted[j].tag
				})
				for _, t := range sorted {
					_, _ = fmt.Fprintf(out, "  %-20s %d\n", t.tag, t.n)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year for the monthly histogram (default current)")
	return cmd
}
