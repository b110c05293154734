package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/lovelog/internal/util"
)

func newAddCmd() *cobra.Command {
	var at string
	var tags []string
	var duration int
	var note string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a moment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if duration < 0 {
				return fmt.Errorf("--duration must be positive")
			}
			when, err := util.ParseAt(at, time.Now().In(app.Book.Location()))
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}
			e, err := app.Book.Add(cmd.Context(), when, tags, duration, note)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.ID, e.DayKey)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "moment of the entry: 2h, 3d, 2006-01-02T15:04, ... (default now)")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "tags (comma-separated or repeated); config default_tags when empty")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "duration in minutes")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")
	return cmd
}
