package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/mithrel/lovelog/pkg/api"
)

func newListCmd() *cobra.Command {
	var day string
	var tagPattern string
	var asJSON bool
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			entries := app.Book.Entries()

			if day != "" {
				entries = filterDay(entries, day)
			}
			if tagPattern != "" {
				entries = filterTagsFuzzy(entries, tagPattern)
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, e := range entries {
				t := e.Time(app.Book.Location())
				line := fmt.Sprintf("%s\t%s", e.ID, t.Format("2006-01-02 15:04"))
				if e.DurationMinutes > 0 {
					line += fmt.Sprintf("\t%dm", e.DurationMinutes)
				}
				if len(e.Tags) > 0 {
					line += "\t" + strings.Join(e.Tags, ",")
				}
				if e.Note != "" {
					line += "\t" + e.Note
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "only entries on this day (YYYY-MM-DD, or 'today')")
	cmd.Flags().StringVar(&tagPattern, "tag", "", "only entries with a tag fuzzy-matching this pattern")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most N entries (0 = all)")
	return cmd
}

func filterDay(entries []api.LogEntry, day string) []api.LogEntry {
	if day == "today" {
		day = api.DayKeyOf(time.Now())
	}
	var out []api.LogEntry
	for _, e := range entries {
		if e.DayKey == day {
			out = append(out, e)
		}
	}
	return out
}

// filterTagsFuzzy keeps entries with at least one tag fuzzy-matching
// the pattern, so "vac" finds "Vacation".
func filterTagsFuzzy(entries []api.LogEntry, pattern string) []api.LogEntry {
	var out []api.LogEntry
	for _, e := range entries {
		if len(fuzzy.Find(pattern, e.Tags)) > 0 {
			out = append(out, e)
		}
	}
	return out
}
