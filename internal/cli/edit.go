package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/lovelog/internal/util"
)

func newEditCmd() *cobra.Command {
	var at string
	var tags []string
	var duration int
	var note string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			id := args[0]

			entries := app.Book.Entries()
			idx := -1
			for i, e := range entries {
				if e.ID == id {
					idx = i
					break
				}
			}
			if idx < 0 {
				return fmt.Errorf("entry %s not found", id)
			}
			e := entries[idx]

			if cmd.Flags().Changed("at") {
				when, err := util.ParseAt(at, time.Now().In(app.Book.Location()))
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				e.Timestamp = when.UnixMilli()
			}
			if cmd.Flags().Changed("tags") {
				e.Tags = tags
			}
			if cmd.Flags().Changed("duration") {
				if duration < 0 {
					return fmt.Errorf("--duration must be positive")
				}
				e.DurationMinutes = duration
			}
			if cmd.Flags().Changed("note") {
				e.Note = note
			}

			if err := app.Book.Update(cmd.Context(), e); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "new moment for the entry")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "replace tags")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "duration in minutes (0 clears)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "replace note")
	return cmd
}
