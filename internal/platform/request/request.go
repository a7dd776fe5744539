// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil reads path parameters and admin identity from requests,
so handlers do not reach into chi or the context keys themselves.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vowdirectory/internal/platform/apperr"
	"github.com/taibuivan/vowdirectory/internal/platform/ctxutil"
	"github.com/taibuivan/vowdirectory/internal/platform/sec"
)

/*
Param retrieves a named URL parameter from the request, trimmed of whitespace.
*/
func Param(request *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(request, name))
}

/*
RequiredClaims returns the verified token claims of an admin request.

Returns:
  - *sec.AuthClaims: The verified claims
  - error: apperr.Unauthorized when the request carried no valid token
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
