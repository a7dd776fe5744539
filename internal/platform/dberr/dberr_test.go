// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vowdirectory/internal/platform/apperr"
	"github.com/taibuivan/vowdirectory/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Vendor", "find_vendor"))

	notFound := apperr.As(dberr.Wrap(pgx.ErrNoRows, "Vendor", "find_vendor"))
	require.NotNil(t, notFound)
	assert.Equal(t, "NOT_FOUND", notFound.Code)

	assert.ErrorIs(t, dberr.Wrap(context.Canceled, "Vendor", "list_vendors"), context.Canceled)

	broken := errors.New("connection reset")
	internal := apperr.As(dberr.Wrap(broken, "Vendor", "list_vendors"))
	require.NotNil(t, internal)
	assert.Equal(t, "INTERNAL_ERROR", internal.Code)
	assert.ErrorIs(t, internal, broken)
	assert.Contains(t, internal.Cause.Error(), "list_vendors")
}
