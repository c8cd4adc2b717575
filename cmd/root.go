package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storage-provider/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "storage-provider",
	Short: "S3 Storage Provider",
	Long: `Storage Provider exposes one S3 bucket through a small set of object
operations: access checks, listing, reads, writes, deletes and moves.
It runs as an HTTP service or as a one-shot command line tool.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configDir is where .env and storage-provider.yaml are looked up.
var configDir string

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding .env and storage-provider.yaml")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Console + debug config gives ISO8601 timestamps for CLI users.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
