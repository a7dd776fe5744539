// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/vowdirectory/internal/platform/constants"
)

// CachedRepository is a read-through Redis cache in front of another [Repository].
//
// Cache failures are logged and skipped: the wrapped repository is always
// consulted when Redis cannot answer, and its errors are returned untouched.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a cache whose entries live for ttl.
func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func (repository *CachedRepository) ListCategories(ctx context.Context, limit int) ([]Category, error) {
	return readThrough(ctx, repository, cacheKey("categories", limit), func() ([]Category, error) {
		return repository.next.ListCategories(ctx, limit)
	})
}

func (repository *CachedRepository) ListAffiliations(ctx context.Context, limit int) ([]Affiliation, error) {
	return readThrough(ctx, repository, cacheKey("affiliations", limit), func() ([]Affiliation, error) {
		return repository.next.ListAffiliations(ctx, limit)
	})
}

func (repository *CachedRepository) ListTopLevelRegions(ctx context.Context, limit int) ([]Region, error) {
	return readThrough(ctx, repository, cacheKey("regions", limit), func() ([]Region, error) {
		return repository.next.ListTopLevelRegions(ctx, limit)
	})
}

// Invalidate drops every cached reference list. The seed command calls it
// after replacing the directory content.
func (repository *CachedRepository) Invalidate(ctx context.Context) error {
	var keys []string
	iterator := repository.client.Scan(ctx, 0, constants.RedisPrefixCatalog+"*", 100).Iterator()
	for iterator.Next(ctx) {
		keys = append(keys, iterator.Val())
	}
	if err := iterator.Err(); err != nil {
		return fmt.Errorf("catalog cache: invalidate: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := repository.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("catalog cache: invalidate: %w", err)
	}
	return nil
}

func cacheKey(list string, limit int) string {
	return fmt.Sprintf("%s%s:%d", constants.RedisPrefixCatalog, list, limit)
}

/*
readThrough returns the cached value for key, or loads, stores and returns it.

Parameters:
  - ctx: context.Context
  - repository: *CachedRepository (client, ttl and logger)
  - key: string (fully prefixed Redis key)
  - load: func (the uncached read)

Returns:
  - []T: Rows from cache or from load
  - error: Only errors from load
*/
func readThrough[T any](ctx context.Context, repository *CachedRepository, key string, load func() ([]T, error)) ([]T, error) {
	logger := repository.logger.With(slog.String("key", key))

	// Cache lookup
	raw, err := repository.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rows []T
		if jsonErr := json.Unmarshal(raw, &rows); jsonErr == nil {
			return rows, nil
		}
		logger.WarnContext(ctx, "catalog_cache_corrupt")
	case errors.Is(err, redis.Nil):
		logger.DebugContext(ctx, "catalog_cache_miss")
	default:
		logger.WarnContext(ctx, "catalog_cache_unavailable", slog.String("error", err.Error()))
	}

	// Source of truth
	rows, err := load()
	if err != nil {
		return nil, err
	}

	// Best-effort fill
	if payload, err := json.Marshal(rows); err == nil {
		if err := repository.client.Set(ctx, key, payload, repository.ttl).Err(); err != nil {
			logger.WarnContext(ctx, "catalog_cache_fill_failed", slog.String("error", err.Error()))
		}
	}
	return rows, nil
}
