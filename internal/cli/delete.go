package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/lovelog/internal/db"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			for _, id := range args {
				if err := app.Book.Delete(cmd.Context(), id); err != nil {
					if errors.Is(err, db.ErrNotFound) {
						return fmt.Errorf("entry %s not found", id)
					}
					return err
				}
			}
			if len(args) == 1 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", len(args))
			}
			return nil
		},
	}
	return cmd
}
