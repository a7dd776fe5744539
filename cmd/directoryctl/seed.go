// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vowdirectory/internal/core/catalog"
	"github.com/taibuivan/vowdirectory/internal/core/fixture"
	pgstore "github.com/taibuivan/vowdirectory/internal/platform/postgres"
	redisstore "github.com/taibuivan/vowdirectory/internal/platform/redis"
)

var errPostgresOnly = errors.New("this command needs STORAGE_DRIVER=postgres")

func (c *cli) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <dataset.yaml>",
		Short: "Replace the directory content with a YAML dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := c.logger(cmd)
			ctx := cmd.Context()

			dataset, err := fixture.Load(args[0])
			if err != nil {
				return err
			}

			cfg, err := postgresConfig()
			if err != nil {
				return err
			}

			pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := fixture.Seed(ctx, pool, dataset); err != nil {
				return err
			}
			log.Info("dataset_seeded",
				slog.String("path", args[0]),
				slog.Int("vendors", len(dataset.Vendors)),
				slog.Int("categories", len(dataset.Categories)),
			)

			// Cached reference lists would otherwise outlive the rows they mirror.
			if cfg.RedisURL == "" {
				return nil
			}
			rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
			if err != nil {
				return err
			}
			defer rdb.Close()

			cache := catalog.NewCachedRepository(catalog.NewPostgresRepository(pool), rdb, cfg.CatalogCacheTTL, log)
			if err := cache.Invalidate(ctx); err != nil {
				return fmt.Errorf("invalidate catalog cache: %w", err)
			}
			return nil
		},
	}
}

func (c *cli) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dataset.yaml>",
		Short: "Check a YAML dataset without loading it anywhere",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d regions, %d categories, %d affiliations, %d vendors\n",
				args[0], len(dataset.Regions), len(dataset.Categories), len(dataset.Affiliations), len(dataset.Vendors))
			return err
		},
	}
}
