// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/vowdirectory/pkg/convert"
	"github.com/taibuivan/vowdirectory/pkg/pagination"
)

// # URL Parameters

const (
	ParamKeyword     = "q"
	ParamCategory    = "category"
	ParamLocation    = "location"
	ParamRegion      = "region"
	ParamAffiliation = "affiliation"
	ParamPage        = "vendorsPage"
	ParamSort        = "vendorsSort"
	ParamPageSize    = "pageSize"
)

// Filters holds the optional, human-facing filter tokens of a listing.
// An empty field imposes no constraint.
type Filters struct {
	Keyword     string
	Category    string
	Location    string
	Region      string
	Affiliation string
}

// normalize trims every token.
func (f Filters) normalize() Filters {
	return Filters{
		Keyword:     strings.TrimSpace(f.Keyword),
		Category:    strings.TrimSpace(f.Category),
		Location:    strings.TrimSpace(f.Location),
		Region:      strings.TrimSpace(f.Region),
		Affiliation: strings.TrimSpace(f.Affiliation),
	}
}

// RegionID parses the region token. ok is false when the token is empty or
// not an integer, in which case the region filter is ignored.
func (f Filters) RegionID() (id int64, ok bool) {
	return convert.ToInt64(f.Region)
}

// Query is a normalized listing request.
//
// It is a value: use [Query.WithPage] to move through pages and build a new
// Query for anything else. Two queries with the same [Query.Key] describe the
// same result sequence.
type Query struct {
	Filters
	Sort     SortKey
	Page     int
	PageSize int
}

// NewQuery normalizes raw inputs: filters are trimmed, the sort key falls
// back to [DefaultSort], page and size are clamped (size 0 takes defaultSize).
func NewQuery(filters Filters, sort SortKey, page, pageSize, defaultSize int) Query {
	params := pagination.New(page, pageSize, defaultSize)
	if !sort.IsValid() {
		sort = DefaultSort
	}
	return Query{
		Filters:  filters.normalize(),
		Sort:     sort,
		Page:     params.Page,
		PageSize: params.Size,
	}
}

// WithPage returns a copy of q positioned on page, clamped like NewQuery.
func (q Query) WithPage(page int) Query {
	q.Page = pagination.ClampPage(page)
	return q
}

// Params exposes the page window.
func (q Query) Params() pagination.Params {
	return pagination.Params{Page: q.Page, Size: q.PageSize}
}

// Key identifies the result sequence independently of the page number.
func (q Query) Key() string {
	values := q.Encode()
	values.Del(ParamPage)
	return values.Encode()
}

// Decode reads a [Query] from URL parameters, applying all defaults.
func Decode(values url.Values, defaultSize int) Query {
	params := pagination.Parse(values.Get(ParamPage), values.Get(ParamPageSize), defaultSize)
	filters := Filters{
		Keyword:     values.Get(ParamKeyword),
		Category:    values.Get(ParamCategory),
		Location:    values.Get(ParamLocation),
		Region:      values.Get(ParamRegion),
		Affiliation: values.Get(ParamAffiliation),
	}
	return NewQuery(filters, ParseSort(values.Get(ParamSort)), params.Page, params.Size, defaultSize)
}

// Encode writes q as URL parameters.
//
// Empty filters are omitted and the sort is omitted when it is the default;
// page and page size are always written so the receiver does not depend on
// its own defaults.
func (q Query) Encode() url.Values {
	values := url.Values{}
	setIfPresent := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	setIfPresent(ParamKeyword, q.Keyword)
	setIfPresent(ParamCategory, q.Category)
	setIfPresent(ParamLocation, q.Location)
	setIfPresent(ParamRegion, q.Region)
	setIfPresent(ParamAffiliation, q.Affiliation)

	if q.Sort != DefaultSort && q.Sort.IsValid() {
		values.Set(ParamSort, string(q.Sort))
	}

	values.Set(ParamPage, strconv.Itoa(q.Page))
	values.Set(ParamPageSize, strconv.Itoa(q.PageSize))
	return values
}
