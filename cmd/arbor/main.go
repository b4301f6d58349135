// Command arbor loads layout descriptions and lays them out, replays input
// scripts against them headlessly, or opens them in a window.
//
// Usage:
//
//	arbor dump layout.toml [--width 640 --height 480] [--paint]
//	arbor script layout.toml script.json
//	arbor run layout.toml [--script script.json]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "arbor",
		Short:         "Lay out, script and preview arbor widget trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log layout diagnostics and frame timings")

	cmd.AddCommand(
		newDumpCmd(opts),
		newScriptCmd(opts),
		newRunCmd(opts),
	)
	return cmd
}

// logger builds the stderr logger shared by every subcommand.
func (o *rootOptions) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
