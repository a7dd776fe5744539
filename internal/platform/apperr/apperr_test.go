// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vowdirectory/internal/platform/apperr"
)

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("relation core.vendor does not exist")
	err := apperr.Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.NotContains(t, err.Error(), "core.vendor")
	assert.ErrorIs(t, err, cause)
}

func TestAs_TraversesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("vendor: lookup: %w", apperr.NotFound("Vendor"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Vendor not found", ae.Message)

	assert.Nil(t, apperr.As(errors.New("plain")))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not found", apperr.NotFound("Vendor"), http.StatusNotFound, apperr.CodeNotFound},
		{"unauthorized", apperr.Unauthorized("Authentication required"), http.StatusUnauthorized, apperr.CodeUnauthorized},
		{"forbidden", apperr.Forbidden("Insufficient permissions"), http.StatusForbidden, apperr.CodeForbidden},
		{"validation", apperr.ValidationError("Validation failed"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate limited", apperr.RateLimited(3), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"internal", apperr.Internal(nil), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}

	assert.Equal(t, "Too many requests. Try again in 3s.", apperr.RateLimited(3).Message)
}
