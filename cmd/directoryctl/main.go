// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command directoryctl is the operator CLI for the vendor directory.
//
// It applies migrations, loads YAML datasets into PostgreSQL, and runs the
// listing pipeline from the terminal.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vowdirectory/internal/platform/constants"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// cli carries what every subcommand shares.
type cli struct {
	verbose bool
}

func (c *cli) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "directoryctl"))
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "directoryctl",
		Short:         "Operate the vendor directory",
		Version:       constants.AppVersion,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.migrateCommand(),
		c.seedCommand(),
		c.validateCommand(),
		c.searchCommand(),
	)
	return root
}
