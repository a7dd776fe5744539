// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vowdirectory/internal/api"
	"github.com/taibuivan/vowdirectory/internal/core/catalog"
	"github.com/taibuivan/vowdirectory/internal/core/fixture"
	"github.com/taibuivan/vowdirectory/internal/core/landing"
	"github.com/taibuivan/vowdirectory/internal/core/listing"
	"github.com/taibuivan/vowdirectory/internal/core/vendor"
	"github.com/taibuivan/vowdirectory/internal/platform/config"
	"github.com/taibuivan/vowdirectory/internal/platform/middleware"
	"github.com/taibuivan/vowdirectory/internal/platform/sec"
)

// stubVerifier accepts "admin-token" and "member-token".
type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	switch token {
	case "admin-token":
		return &sec.AuthClaims{UserID: "u1", Role: string(sec.RoleAdmin)}, nil
	case "member-token":
		return &sec.AuthClaims{UserID: "u2", Role: "member"}, nil
	default:
		return nil, errors.New("bad token")
	}
}

func newTestServer(t *testing.T, verifier middleware.TokenVerifier, checks ...api.HealthCheck) http.Handler {
	t.Helper()

	dataset, err := fixture.Load("../../data/seed/catalog.yaml")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	vendors := vendor.NewService(vendor.NewMemoryRepository(dataset), logger)
	references := catalog.NewService(catalog.NewMemoryRepository(dataset), logger)
	liveness, readiness := api.NewHealthHandlers(checks, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", Environment: "development"}
	server := api.NewServer(ctx, cfg, logger, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Vendor:    vendor.NewHandler(vendors),
		Catalog:   catalog.NewHandler(references),
		Landing:   landing.NewHandler(landing.NewService(vendors, references)),
	})
	return server.Handler()
}

func get(t *testing.T, handler http.Handler, target, token string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, nil)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"liveness", "/health", http.StatusOK},
		{"readiness without checks", "/ready", http.StatusOK},
		{"vendor search", "/api/v1/vendors?q=studio", http.StatusOK},
		{"featured vendors", "/api/v1/vendors/featured", http.StatusOK},
		{"vendor detail", "/api/v1/vendors/lumiere-studio", http.StatusOK},
		{"inactive vendor detail", "/api/v1/vendors/promenade-planning", http.StatusNotFound},
		{"landing", "/api/v1/landing", http.StatusOK},
		{"categories", "/api/v1/categories", http.StatusOK},
		{"affiliations", "/api/v1/affiliations", http.StatusOK},
		{"regions", "/api/v1/regions", http.StatusOK},
		{"admin unmounted without verifier", "/api/v1/admin/vendors", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(t, handler, tt.target, "")
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}

func TestServer_SearchIsBare(t *testing.T) {
	handler := newTestServer(t, nil)

	recorder := get(t, handler, "/api/v1/vendors?location=Nice&vendorsSort=alpha", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var page listing.Page
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.PageSize)
	assert.Equal(t, len(page.Vendors), page.Total)
	for _, item := range page.Vendors {
		assert.True(t, item.IsActive, item.Slug)
	}
}

func TestServer_AdminRoutes(t *testing.T) {
	handler := newTestServer(t, stubVerifier{})

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"invalid token", "forged", http.StatusUnauthorized},
		{"member", "member-token", http.StatusForbidden},
		{"admin", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(t, handler, "/api/v1/admin/vendors?pageSize=30", tt.token)
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}

	t.Run("admin sees inactive vendors", func(t *testing.T) {
		recorder := get(t, handler, "/api/v1/admin/vendors?pageSize=30", "admin-token")
		require.Equal(t, http.StatusOK, recorder.Code)

		var page listing.Page
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))

		inactive := 0
		for _, item := range page.Vendors {
			if !item.IsActive {
				inactive++
			}
		}
		assert.Equal(t, 1, inactive)
	})
}

func TestServer_ReadinessDegraded(t *testing.T) {
	handler := newTestServer(t, nil,
		api.HealthCheck{Name: "postgres", Check: func(context.Context) error { return nil }},
		api.HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
	)

	recorder := get(t, handler, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var envelope struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name  string `json:"name"`
				OK    bool   `json:"ok"`
				Error string `json:"error"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "degraded", envelope.Data.Status)
	require.Len(t, envelope.Data.Checks, 2)
	assert.True(t, envelope.Data.Checks[0].OK)
	assert.False(t, envelope.Data.Checks[1].OK)
	assert.Equal(t, "connection refused", envelope.Data.Checks[1].Error)
}
