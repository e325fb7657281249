package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "feedquote",
		Short:         "Quote pet feeding rewards from snapshot files",
		Long:          "feedquote reads a JSON file of on-chain feeding snapshots and prints reward quotes, remaining feeding hours and batch feed plans.",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML config file (hard_cap_hours, workers, output)")
	flags.StringVar(&opts.now, "now", "", "evaluation time as Unix seconds or RFC3339 (default: current time)")
	flags.StringVarP(&opts.output, "output", "o", "", "output format: table or json")
	flags.Uint32Var(&opts.hardCap, "hard-cap", 0, "feeding hard cap in hours (default: config or 168)")
	flags.IntVar(&opts.workers, "workers", 0, "aggregation workers per batch")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log service activity to stderr")

	root.AddCommand(
		quoteCmd(opts),
		remainingCmd(opts),
		planCmd(opts),
		validateCmd(opts),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "feedquote %s (commit %s, %s)\n", version, commit, runtime.Version())
		},
	}
}
