// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package listing defines the vendor listing contract.

The same request and response shapes are used by the public search endpoint,
the landing page, the admin vendor table and the incremental list client, so
that any page can be requested again (or the next page fetched) with exactly
the parameters that produced the first one.

Core Responsibility:

  - Query: the normalized, immutable request value (filters, sort, page window).
  - Encoding: stable mapping to and from URL query parameters.
  - Page: the response shape ({vendors, total, page, pageSize}).

Malformed input is never an error here. Unknown sort keys fall back to
[SortRating] and page values are clamped through [pagination].
*/
package listing

import (
	"time"

	"github.com/taibuivan/vowdirectory/pkg/pagination"
)

// # Sort Keys

// SortKey selects the ordering of a listing.
type SortKey string

const (
	// SortAlpha orders by business name, then id.
	SortAlpha SortKey = "alpha"

	// SortRating orders by average rating (unrated last), review count, name, id.
	SortRating SortKey = "rating"

	// SortNewest orders by last update, newest first.
	SortNewest SortKey = "newest"

	// SortSaves orders by save count, most saved first.
	SortSaves SortKey = "saves"

	// SortViews orders by view count, most viewed first.
	SortViews SortKey = "views"

	// DefaultSort is applied when the sort key is absent or unrecognised.
	DefaultSort = SortRating
)

// IsValid reports whether k is one of the recognised sort keys.
func (k SortKey) IsValid() bool {
	switch k {
	case SortAlpha, SortRating, SortNewest, SortSaves, SortViews:
		return true
	}
	return false
}

// ParseSort converts a raw value into a [SortKey], falling back to [DefaultSort].
func ParseSort(raw string) SortKey {
	if key := SortKey(raw); key.IsValid() {
		return key
	}
	return DefaultSort
}

// # Response

// Item is one vendor card in a listing page.
//
// Nullable columns stay pointers so they serialise as JSON null rather than
// as zero values (an unrated vendor is not a 0.0 vendor).
type Item struct {
	ID            int64     `json:"id"`
	BusinessName  string    `json:"business_name"`
	Slug          string    `json:"slug"`
	LogoURL       *string   `json:"logo_url"`
	AverageRating *float64  `json:"average_rating"`
	ReviewCount   *int      `json:"review_count"`
	LocationText  *string   `json:"location_text"`
	City          *string   `json:"city"`
	IsActive      bool      `json:"is_active"`
	IsFeatured    bool      `json:"is_featured"`
	UpdatedAt     time.Time `json:"updated_at"`
	CoverImageURL *string   `json:"cover_image_url"`
}

// Page is the listing response body.
type Page struct {
	Vendors  []Item `json:"vendors"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// NewPage builds a response for query, never returning a nil vendors slice.
func NewPage(query Query, vendors []Item, total int) Page {
	if vendors == nil {
		vendors = []Item{}
	}
	return Page{Vendors: vendors, Total: total, Page: query.Page, PageSize: query.PageSize}
}

// TotalPages returns how many pages the total spans at this page size (at least 1).
func (p Page) TotalPages() int {
	return pagination.TotalPages(p.Total, p.PageSize)
}
