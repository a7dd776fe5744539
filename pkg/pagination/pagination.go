// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides page arithmetic shared by list endpoints and
// the incremental list client.
//
// # Overview
//
// Pages are 1-indexed. Page sizes are clamped to [MinPageSize, MaxPageSize] to
// bound backend load, and malformed input falls back to defaults instead of
// producing an error.
package pagination

import (
	"math"

	"github.com/taibuivan/vowdirectory/pkg/convert"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// DefaultPageSize is the page size of the public vendor listing.
	DefaultPageSize = 12
	// LandingPageSize is the page size used on the landing page.
	LandingPageSize = 9
	// MinPageSize is the lower bound for items per page.
	MinPageSize = 1
	// MaxPageSize is the upper bound for items per page.
	MaxPageSize = 30
	// MaxPage is the largest page whose offset fits in an int at MaxPageSize.
	MaxPage = math.MaxInt/MaxPageSize + 1
)

// Params holds a clamped page number and page size.
type Params struct {
	Page int
	Size int
}

// Offset returns the SQL OFFSET value derived from Page and Size. Values that
// would overflow saturate at math.MaxInt so the offset is never negative.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Size
}

// New clamps page and size into their valid ranges.
//
// A zero size means "not supplied" and takes defaultSize; any other value
// is clamped into [MinPageSize, MaxPageSize].
func New(page, size, defaultSize int) Params {
	return Params{Page: ClampPage(page), Size: ClampSize(size, defaultSize)}
}

// Parse reads raw query-string values. Non-numeric input is treated as absent.
func Parse(rawPage, rawSize string, defaultSize int) Params {
	return New(convert.ToIntD(rawPage, 0), convert.ToIntD(rawSize, 0), defaultSize)
}

// ClampPage bounds page to [DefaultPage, MaxPage].
func ClampPage(page int) int {
	return min(MaxPage, max(DefaultPage, page))
}

// ClampSize bounds size to [MinPageSize, MaxPageSize]; zero selects defaultSize.
func ClampSize(size, defaultSize int) int {
	if size == 0 {
		size = defaultSize
	}
	return min(MaxPageSize, max(MinPageSize, size))
}

// TotalPages returns ceil(total/size), never less than 1.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return max(1, (total+size-1)/size)
}
