// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vowdirectory/internal/core/listing"
	"github.com/taibuivan/vowdirectory/pkg/pagination"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want listing.SortKey
	}{
		{"alpha", listing.SortAlpha},
		{"rating", listing.SortRating},
		{"newest", listing.SortNewest},
		{"saves", listing.SortSaves},
		{"views", listing.SortViews},
		{"", listing.SortRating},
		{"price", listing.SortRating},
		{"ALPHA", listing.SortRating},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, listing.ParseSort(tt.raw))
		})
	}
}

func TestDecode_Defaults(t *testing.T) {
	query := listing.Decode(url.Values{}, pagination.DefaultPageSize)

	assert.Equal(t, listing.SortRating, query.Sort)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 12, query.PageSize)
	assert.Equal(t, listing.Filters{}, query.Filters)
}

func TestDecode_ClampsAndTrims(t *testing.T) {
	values := url.Values{
		"q":           {"  rose  "},
		"location":    {" Nice "},
		"region":      {" 7 "},
		"vendorsPage": {"-3"},
		"vendorsSort": {"cheapest"},
		"pageSize":    {"500"},
	}

	query := listing.Decode(values, pagination.DefaultPageSize)

	assert.Equal(t, "rose", query.Keyword)
	assert.Equal(t, "Nice", query.Location)
	assert.Equal(t, listing.SortRating, query.Sort)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, pagination.MaxPageSize, query.PageSize)

	id, ok := query.RegionID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestRegionID_IgnoresNonInteger(t *testing.T) {
	for _, raw := range []string{"", "north", "1.5", "7a"} {
		_, ok := listing.Filters{Region: raw}.RegionID()
		assert.False(t, ok, raw)
	}
}

func TestEncode(t *testing.T) {
	t.Run("omits default sort and empty filters", func(t *testing.T) {
		query := listing.NewQuery(listing.Filters{Location: "Nice"}, listing.SortRating, 2, 12, pagination.DefaultPageSize)

		values := query.Encode()

		assert.Equal(t, "Nice", values.Get(listing.ParamLocation))
		assert.Equal(t, "2", values.Get(listing.ParamPage))
		assert.Equal(t, "12", values.Get(listing.ParamPageSize))
		assert.False(t, values.Has(listing.ParamSort))
		assert.False(t, values.Has(listing.ParamKeyword))
		assert.False(t, values.Has(listing.ParamCategory))
	})

	t.Run("writes non-default sort", func(t *testing.T) {
		query := listing.NewQuery(listing.Filters{}, listing.SortViews, 1, 12, pagination.DefaultPageSize)

		assert.Equal(t, "views", query.Encode().Get(listing.ParamSort))
	})
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	queries := []listing.Query{
		listing.NewQuery(listing.Filters{}, listing.SortRating, 1, 12, pagination.DefaultPageSize),
		listing.NewQuery(listing.Filters{Keyword: "a & b", Category: "photography"}, listing.SortAlpha, 3, 30, pagination.DefaultPageSize),
		listing.NewQuery(listing.Filters{Location: "Nice Côte", Region: "4", Affiliation: "guild"}, listing.SortNewest, 9, 1, pagination.DefaultPageSize),
	}

	for _, query := range queries {
		// A different receiver default must not matter: pageSize is always sent.
		decoded := listing.Decode(query.Encode(), pagination.LandingPageSize)
		assert.Equal(t, query, decoded)
	}
}

func TestKey_IgnoresPage(t *testing.T) {
	base := listing.NewQuery(listing.Filters{Keyword: "flowers"}, listing.SortSaves, 1, 12, pagination.DefaultPageSize)

	assert.Equal(t, base.Key(), base.WithPage(4).Key())
	assert.NotEqual(t, base.Key(), listing.NewQuery(listing.Filters{Keyword: "flower"}, listing.SortSaves, 1, 12, 12).Key())
	assert.NotEqual(t, base.Key(), listing.NewQuery(listing.Filters{Keyword: "flowers"}, listing.SortSaves, 1, 24, 12).Key())
}

func TestWithPage_Clamps(t *testing.T) {
	query := listing.NewQuery(listing.Filters{}, listing.SortRating, 5, 12, 12)

	assert.Equal(t, 1, query.WithPage(0).Page)
	assert.Equal(t, 5, query.Page)
}

func TestPage_JSONShape(t *testing.T) {
	query := listing.NewQuery(listing.Filters{}, listing.SortRating, 2, 12, 12)

	raw, err := json.Marshal(listing.NewPage(query, nil, 0))
	require.NoError(t, err)

	assert.JSONEq(t, `{"vendors":[],"total":0,"page":2,"pageSize":12}`, string(raw))
}

func TestItem_NullableFields(t *testing.T) {
	raw, err := json.Marshal(listing.Item{ID: 1, BusinessName: "Rose & Co", Slug: "rose-co"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, field := range []string{"average_rating", "review_count", "cover_image_url", "logo_url", "city", "location_text"} {
		value, present := decoded[field]
		assert.True(t, present, field)
		assert.Nil(t, value, field)
	}
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{25, 12, 3},
	}

	for _, tt := range tests {
		page := listing.Page{Total: tt.total, PageSize: tt.size}
		assert.Equal(t, tt.want, page.TotalPages())
	}
}
