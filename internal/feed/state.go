// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"slices"

	"github.com/taibuivan/vowdirectory/internal/core/listing"
	"github.com/taibuivan/vowdirectory/pkg/pagination"
)

// Status is the load status of the next page.
type Status int

const (
	// StatusIdle means more pages remain and none is being fetched.
	StatusIdle Status = iota
	// StatusLoading means the next page is being fetched.
	StatusLoading
	// StatusError means the last fetch failed; only a retry leaves this state.
	StatusError
	// StatusExhausted means every page has been loaded for this query.
	StatusExhausted
)

func (status Status) String() string {
	switch status {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// State is the accumulated listing for one query.
//
// State is a value. Transitions return a new State and never modify the
// receiver's Vendors backing array.
type State struct {
	// Query is the search this state belongs to; Query.Page is the page the
	// state was started from.
	Query listing.Query

	// Vendors holds every loaded vendor once, in server order.
	Vendors []listing.Item

	// LoadedPages is the highest page number loaded.
	LoadedPages int

	Total    int
	PageSize int
	Status   Status

	// Err is the last fetch error while Status is StatusError.
	Err error
}

// Start discards any previous state and begins from an already fetched
// initial page of query.
func Start(query listing.Query, initial listing.Page) State {
	state := State{
		Query:       query,
		LoadedPages: max(1, initial.Page),
		Total:       initial.Total,
		PageSize:    initial.PageSize,
	}
	if state.PageSize <= 0 {
		state.PageSize = query.PageSize
	}

	state.Vendors = appendUnique(nil, initial.Vendors)
	return state.settle()
}

// TotalPages is max(1, ceil(Total / PageSize)).
func (state State) TotalPages() int {
	return pagination.TotalPages(state.Total, state.PageSize)
}

// HasMore reports whether pages beyond LoadedPages exist.
func (state State) HasMore() bool {
	return state.LoadedPages < state.TotalPages()
}

// NextQuery is the request for the page after LoadedPages.
func (state State) NextQuery() listing.Query {
	return state.Query.WithPage(state.LoadedPages + 1)
}

// BeginLoad moves an idle state to loading. ok is false in every other
// status, including StatusError, which only [State.BeginRetry] leaves.
func (state State) BeginLoad() (next State, request listing.Query, ok bool) {
	if state.Status != StatusIdle {
		return state, listing.Query{}, false
	}
	state.Status = StatusLoading
	return state, state.NextQuery(), true
}

// BeginRetry reissues the failed request. ok is false unless Status is StatusError.
func (state State) BeginRetry() (next State, request listing.Query, ok bool) {
	if state.Status != StatusError {
		return state, listing.Query{}, false
	}
	state.Status = StatusLoading
	state.Err = nil
	return state, state.NextQuery(), true
}

// ApplyPage appends vendors not already loaded and advances LoadedPages.
func (state State) ApplyPage(page listing.Page) State {
	state.Vendors = appendUnique(state.Vendors, page.Vendors)
	state.LoadedPages = max(state.LoadedPages, page.Page)
	state.Total = page.Total
	if page.PageSize > 0 {
		state.PageSize = page.PageSize
	}
	state.Err = nil
	return state.settle()
}

// ApplyError records a failed fetch. Loaded vendors and LoadedPages are kept.
func (state State) ApplyError(err error) State {
	state.Status = StatusError
	state.Err = err
	return state
}

// settle derives the resting status after a page has been applied.
func (state State) settle() State {
	if state.HasMore() {
		state.Status = StatusIdle
	} else {
		state.Status = StatusExhausted
	}
	return state
}

// appendUnique returns existing followed by the incoming items whose id is
// not yet present. existing's backing array is never written.
func appendUnique(existing, incoming []listing.Item) []listing.Item {
	seen := make(map[int64]struct{}, len(existing)+len(incoming))
	for _, item := range existing {
		seen[item.ID] = struct{}{}
	}

	merged := slices.Clip(existing)
	for _, item := range incoming {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		merged = append(merged, item)
	}

	if merged == nil {
		merged = []listing.Item{}
	}
	return merged
}
