package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/lovelog/internal/logbook"
)

func newImportCmd() *cobra.Command {
	var file string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import entries from a JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(file) == "" {
				return fmt.Errorf("--file is required")
			}
			app := getApp(cmd)

			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			mode := logbook.Merge
			if overwrite {
				mode = logbook.Overwrite
			}
			n, err := app.Book.Import(cmd.Context(), data, mode)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input JSON file (array of entries)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "clear existing entries before importing")
	return cmd
}
