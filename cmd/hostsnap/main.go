package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hostsnap/internal/collect"
	"hostsnap/internal/config"
	"hostsnap/internal/render"
)

const version = "1.0.0"

func main() {
	var (
		jsonOut    bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "hostsnap",
		Short:   "Point-in-time snapshot of a host's operational health",
		Long:    "hostsnap samples CPU, memory, disk, processes, users, GPU and sensors once and prints a report.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				return err
			}
			opts.JSON = jsonOut
			return run(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the snapshot as JSON instead of a text report")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to an optional YAML config file")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hostsnap:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts config.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	snap, err := collect.New(opts).Snapshot(ctx)
	if err != nil {
		// The only fatal path: without virtual-memory stats the report
		// is meaningless. Everything else degrades to "unavailable".
		return fmt.Errorf("cannot read virtual memory stats (is /proc mounted?): %w", err)
	}
	if opts.JSON {
		return render.JSON(os.Stdout, snap)
	}
	render.Text(os.Stdout, snap)
	return nil
}
