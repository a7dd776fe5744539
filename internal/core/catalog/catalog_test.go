// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vowdirectory/internal/core/catalog"
	"github.com/taibuivan/vowdirectory/internal/core/fixture"
	"github.com/taibuivan/vowdirectory/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDataset() *fixture.Dataset {
	return &fixture.Dataset{
		Regions: []fixture.Region{
			{ID: 1, Name: "Provence"},
			{ID: 2, Name: "Alpes-Maritimes", ParentID: pointer.To(int64(1))},
			{ID: 3, Name: "Brittany"},
		},
		Categories: []fixture.Category{
			{ID: 1, Name: "Venues", Slug: "venues", DisplayOrder: 2},
			{ID: 2, Name: "Florists", Slug: "florists", DisplayOrder: 1},
			{ID: 3, Name: "Bakers", Slug: "bakers", DisplayOrder: 2},
		},
		Affiliations: []fixture.Affiliation{
			{ID: 1, Name: "Zeta Guild", Slug: "zeta-guild"},
			{ID: 2, Name: "Alpha Pledge", Slug: "alpha-pledge"},
		},
	}
}

func TestMemoryRepository_Ordering(t *testing.T) {
	repository := catalog.NewMemoryRepository(testDataset())
	ctx := context.Background()

	categories, err := repository.ListCategories(ctx, catalog.ListLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"florists", "bakers", "venues"}, slugsOf(categories))

	affiliations, err := repository.ListAffiliations(ctx, catalog.ListLimit)
	require.NoError(t, err)
	require.Len(t, affiliations, 2)
	assert.Equal(t, "alpha-pledge", affiliations[0].Slug)

	regions, err := repository.ListTopLevelRegions(ctx, catalog.ListLimit)
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "Brittany", regions[0].Name)
	assert.Equal(t, "Provence", regions[1].Name)

	limited, err := repository.ListCategories(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

// failingRepository returns err from every call and counts calls.
type failingRepository struct {
	err   error
	calls int
}

func (repository *failingRepository) ListCategories(context.Context, int) ([]catalog.Category, error) {
	repository.calls++
	return nil, repository.err
}

func (repository *failingRepository) ListAffiliations(context.Context, int) ([]catalog.Affiliation, error) {
	repository.calls++
	return nil, repository.err
}

func (repository *failingRepository) ListTopLevelRegions(context.Context, int) ([]catalog.Region, error) {
	repository.calls++
	return nil, repository.err
}

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCachedRepository_FallsThroughWhenRedisIsDown(t *testing.T) {
	inner := catalog.NewMemoryRepository(testDataset())
	cached := catalog.NewCachedRepository(inner, unreachableRedis(t), time.Minute, discardLogger())

	categories, err := cached.ListCategories(context.Background(), catalog.ListLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"florists", "bakers", "venues"}, slugsOf(categories))

	regions, err := cached.ListTopLevelRegions(context.Background(), catalog.ListLimit)
	require.NoError(t, err)
	assert.Len(t, regions, 2)
}

func TestCachedRepository_PropagatesStoreErrors(t *testing.T) {
	inner := &failingRepository{err: errors.New("connection refused")}
	cached := catalog.NewCachedRepository(inner, unreachableRedis(t), time.Minute, discardLogger())

	_, err := cached.ListAffiliations(context.Background(), catalog.ListLimit)
	require.ErrorIs(t, err, inner.err)
	assert.Equal(t, 1, inner.calls)
}

func TestHandler_Routes(t *testing.T) {
	handler := catalog.NewHandler(catalog.NewService(catalog.NewMemoryRepository(testDataset()), discardLogger()))
	router := handler.Routes()

	tests := []struct {
		path string
		want int
	}{
		{"/categories", 3},
		{"/affiliations", 2},
		{"/regions", 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, recorder.Code)

			var body struct {
				Data []json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Len(t, body.Data, tt.want)
		})
	}
}

func TestHandler_StoreFailureIs500(t *testing.T) {
	handler := catalog.NewHandler(catalog.NewService(&failingRepository{err: errors.New("boom")}, discardLogger()))

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"error"`)
}

func slugsOf(categories []catalog.Category) []string {
	slugs := make([]string, len(categories))
	for i, category := range categories {
		slugs[i] = category.Slug
	}
	return slugs
}
