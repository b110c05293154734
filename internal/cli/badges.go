package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBadgesCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show achievement badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			out := cmd.OutOrStdout()
			unlocked := 0
			for _, r := range app.Book.Badges() {
				if r.Unlocked {
					unlocked++
				}
				// Secret badges stay hidden until unlocked.
				if r.Secret && !r.Unlocked && !all {
					continue
				}
				mark := " "
				if r.Unlocked {
					mark = "x"
				}
				name := r.Name
				desc := r.Desc
				if r.Secret && !r.Unlocked {
					name = "???"
					desc = "Hidden badge."
				}
				_, _ = fmt.Fprintf(out, "[%s] %-16s %3d/%-3d  %s\n", mark, name, r.Progress, r.Target, desc)
			}
			_, _ = fmt.Fprintf(out, "\nUnlocked %d of %d\n", unlocked, len(app.Book.Badges()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include locked secret badges (masked)")
	return cmd
}
