package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	check_cmd "github.com/walteh/safehx/cmd/safehx/check"
	render_cmd "github.com/walteh/safehx/cmd/safehx/render"
	watch_cmd "github.com/walteh/safehx/cmd/safehx/watch"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	rootCmd := &cobra.Command{
		Use:   "safehx",
		Short: "parse and safely render HEEx-style component templates",
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(render_cmd.NewRenderCommand())
	rootCmd.AddCommand(check_cmd.NewCheckCommand())
	rootCmd.AddCommand(watch_cmd.NewWatchCommand())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
