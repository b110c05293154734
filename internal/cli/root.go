package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mithrel/lovelog/internal/config"
	"github.com/mithrel/lovelog/internal/notify"
	"github.com/mithrel/lovelog/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root cobra.Command and runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "lovelog",
		Short:         "lovelog — local-first activity logging with streaks and badges",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			if requiresGate(cmd) {
				if err := checkPINGate(v); err != nil {
					return err
				}
			}
			app, err := wire.BuildApp(cmd.Context(), v, stdoutSink(cmd))
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newBadgesCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newClearCmd())
	cmd.AddCommand(newTagsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}

// stdoutSink renders unlock events as plain lines on the command's
// stdout; presentation stays out of the engine.
func stdoutSink(cmd *cobra.Command) notify.Sink {
	return notify.Func(func(ev notify.Event) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "** %s %s\n", ev.Title, ev.Message)
	})
}

// requiresGate exempts commands that never touch entry data.
func requiresGate(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "completion", "help", "__complete":
			return false
		}
	}
	return true
}

// checkPINGate prompts for the configured PIN before any data access.
func checkPINGate(v *viper.Viper) error {
	if !v.GetBool("security.pin_enabled") {
		return nil
	}
	stored := v.GetString("security.pin_hash")
	if stored == "" {
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("pin gate enabled; interactive terminal required")
	}
	fmt.Fprint(os.Stderr, "PIN: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}
	if !config.VerifyPIN(string(raw), stored) {
		return fmt.Errorf("wrong PIN")
	}
	return nil
}
