// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package feed drives an incrementally loaded, virtualized vendor grid.

The package is split so that everything except network I/O is a pure function:

  - Layout: column count from viewport width, row chunking, the window of
    rows to materialize and the total scroll height.
  - State: the accumulated list and its transitions (start, begin load,
    apply page, apply error, retry).
  - Session: a goroutine-safe adapter that owns one State, runs fetches
    through a [Fetcher] and drops responses that belong to an older query.
  - Client: a [Fetcher] speaking the vendor search endpoint.
*/
package feed

// # Layout Constants

const (
	// BreakpointMedium is the viewport width at which the grid gets 2 columns.
	BreakpointMedium = 640

	// BreakpointLarge is the viewport width at which the grid gets 3 columns.
	BreakpointLarge = 1024

	// RowHeight is the card height in pixels.
	RowHeight = 200

	// RowGap is the vertical gap between rows in pixels.
	RowGap = 16

	// RowSlot is the vertical space one row occupies.
	RowSlot = RowHeight + RowGap

	// Overscan is the number of rows materialized beyond each viewport edge.
	Overscan = 3

	// LoadMoreThreshold is how close (in rows) the last materialized row must
	// be to the end of the loaded rows before the next page is requested.
	LoadMoreThreshold = 2
)

// Columns returns the grid column count for a viewport width.
func Columns(viewportWidth int) int {
	switch {
	case viewportWidth >= BreakpointLarge:
		return 3
	case viewportWidth >= BreakpointMedium:
		return 2
	default:
		return 1
	}
}

// RowCount returns how many rows n items fill at the given column count.
func RowCount(n, columns int) int {
	if n <= 0 {
		return 0
	}
	columns = max(1, columns)
	return (n + columns - 1) / columns
}

// Rows chunks items into rows of columns items, preserving order. The last
// row may be short.
func Rows[T any](items []T, columns int) [][]T {
	columns = max(1, columns)
	rows := make([][]T, 0, RowCount(len(items), columns))
	for start := 0; start < len(items); start += columns {
		rows = append(rows, items[start:min(start+columns, len(items))])
	}
	return rows
}

// TotalHeight is the scrollable height of rowCount rows.
func TotalHeight(rowCount int) int {
	return max(0, rowCount) * RowSlot
}

// Window is an inclusive range of row indexes to materialize. An empty
// window has Last < First.
type Window struct {
	First int
	Last  int
}

// Empty reports whether the window contains no rows.
func (window Window) Empty() bool {
	return window.Last < window.First
}

// VisibleWindow returns the rows intersecting the viewport, widened by
// [Overscan] on both sides and clamped to [0, rowCount).
func VisibleWindow(scrollTop, viewportHeight, rowCount int) Window {
	if rowCount <= 0 {
		return Window{First: 0, Last: -1}
	}

	scrollTop = max(0, scrollTop)
	viewportHeight = max(0, viewportHeight)

	first := scrollTop/RowSlot - Overscan
	last := (scrollTop+viewportHeight)/RowSlot + Overscan

	return Window{
		First: min(max(0, first), rowCount-1),
		Last:  min(max(0, last), rowCount-1),
	}
}

// NearEnd reports whether the last materialized row is within
// [LoadMoreThreshold] rows of the end of the loaded rows.
func NearEnd(window Window, rowCount int) bool {
	if window.Empty() || rowCount == 0 {
		return false
	}
	return window.Last >= rowCount-LoadMoreThreshold
}
