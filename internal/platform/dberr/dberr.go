// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/vowdirectory/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// pgx.ErrNoRows becomes a 404 for the named resource. Context cancellation is
// returned as-is so callers can tell an abandoned request from a broken store.
// Everything else becomes an internal error tagged with the action that failed.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}
