// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vowdirectory/internal/core/fixture"
	"github.com/taibuivan/vowdirectory/internal/core/listing"
	"github.com/taibuivan/vowdirectory/internal/core/vendor"
	"github.com/taibuivan/vowdirectory/internal/platform/config"
	pgstore "github.com/taibuivan/vowdirectory/internal/platform/postgres"
	"github.com/taibuivan/vowdirectory/pkg/pagination"
)

type searchOptions struct {
	filters  listing.Filters
	sort     string
	page     int
	pageSize int
	admin    bool
	seedPath string
}

func (c *cli) searchCommand() *cobra.Command {
	options := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a vendor search and print the listing page as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runSearch(cmd, options)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.filters.Keyword, "query", "q", "", "business name keyword")
	flags.StringVar(&options.filters.Category, "category", "", "category slug")
	flags.StringVar(&options.filters.Location, "location", "", "free-text location")
	flags.StringVar(&options.filters.Region, "region", "", "region id")
	flags.StringVar(&options.filters.Affiliation, "affiliation", "", "affiliation slug")
	flags.StringVar(&options.sort, "sort", string(listing.DefaultSort), "alpha, rating, newest, saves or views")
	flags.IntVar(&options.page, "page", 1, "page number")
	flags.IntVar(&options.pageSize, "page-size", pagination.DefaultPageSize, "vendors per page")
	flags.BoolVar(&options.admin, "admin", false, "include inactive vendors")
	flags.StringVar(&options.seedPath, "seed", "", "search a YAML dataset instead of the configured store")

	return cmd
}

func (c *cli) runSearch(cmd *cobra.Command, options *searchOptions) error {
	log := c.logger(cmd)
	ctx := cmd.Context()

	var repository vendor.Repository
	switch {
	case options.seedPath != "":
		dataset, err := fixture.Load(options.seedPath)
		if err != nil {
			return err
		}
		repository = vendor.NewMemoryRepository(dataset)
	default:
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.UsesPostgres() {
			pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
			if err != nil {
				return err
			}
			defer pool.Close()
			repository = vendor.NewPostgresRepository(pool)
		} else {
			dataset, err := fixture.Load(cfg.SeedPath)
			if err != nil {
				return err
			}
			repository = vendor.NewMemoryRepository(dataset)
		}
	}

	query := listing.NewQuery(options.filters, listing.ParseSort(options.sort),
		options.page, options.pageSize, pagination.DefaultPageSize)

	service := vendor.NewService(repository, log)
	search := service.Search
	if options.admin {
		search = service.AdminSearch
	}

	page, err := search(ctx, query)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(page)
}
