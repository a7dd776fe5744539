package landing_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vowdirectory/internal/core/catalog"
	"github.com/taibuivan/vowdirectory/internal/core/fixture"
	"github.com/taibuivan/vowdirectory/internal/core/landing"
	"github.com/taibuivan/vowdirectory/internal/core/vendor"
)

func TestHandler_Load(t *testing.T) {
	dataset, err := fixture.Load("../../../data/seed/catalog.yaml")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := landing.NewService(
		vendor.NewService(vendor.NewMemoryRepository(dataset), logger),
		catalog.NewService(catalog.NewMemoryRepository(dataset), logger),
	)

	recorder := httptest.NewRecorder()
	landing.NewHandler(service).Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data landing.Bundle `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	bundle := envelope.Data
	assert.NotEmpty(t, bundle.Featured)
	assert.Len(t, bundle.Categories, len(dataset.Categories))
	assert.Equal(t, 9, bundle.Listing.PageSize)
	assert.Equal(t, 1, bundle.Listing.Page)
	assert.LessOrEqual(t, len(bundle.Listing.Vendors), 9)

	for _, item := range bundle.Listing.Vendors {
		assert.True(t, item.IsActive, item.Slug)
	}
}
