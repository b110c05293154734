package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate one year of demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			seed := app.Cfg.GetInt64("demo.seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			n, unlocked, err := app.Book.GenerateDemo(cmd.Context(), rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Generated %d entries (%d badges unlocked)\n", n, unlocked)
			return nil
		},
	}
	return cmd
}
