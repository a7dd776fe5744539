// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/vowdirectory/internal/core/listing"
)

var (
	// ErrClosed is returned by [Session.Open] after [Session.Close].
	ErrClosed = errors.New("feed: session closed")
	// ErrSuperseded is returned by [Session.Open] when a later Open or Reset
	// replaced the query before its initial page arrived.
	ErrSuperseded = errors.New("feed: open superseded")
)

// Fetcher loads one listing page.
type Fetcher interface {
	FetchPage(ctx context.Context, query listing.Query) (listing.Page, error)
}

// Viewport is the visible area of the scroll container, in pixels.
type Viewport struct {
	Width     int
	Height    int
	ScrollTop int
}

// Frame is what a renderer needs to draw the grid for one viewport.
type Frame struct {
	Columns     int
	RowCount    int
	TotalHeight int
	Window      Window

	// Rows holds only the materialized rows, Window.First through Window.Last.
	Rows [][]listing.Item

	Status Status
	Err    error
}

// Session owns the [State] of one search and the fetches that extend it.
//
// Every query change bumps a generation counter. A fetch remembers the
// generation it was started under and its result is dropped if the
// generation has moved on, so a slow page of an old search can never be
// appended to a new one. Opens are numbered the same way, so an initial page
// that arrives after a newer query took over is dropped too.
type Session struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu         sync.Mutex
	state      State
	generation uint64
	cancel     context.CancelFunc
	inflight   sync.WaitGroup
	closed     bool

	opens   uint64
	opening context.CancelFunc
}

// NewSession creates an empty session. Call [Session.Open] or
// [Session.Reset] to give it a query.
func NewSession(fetcher Fetcher, logger *slog.Logger) *Session {
	return &Session{
		fetcher: fetcher,
		logger:  logger,
		state:   State{Vendors: []listing.Item{}, Status: StatusExhausted},
	}
}

/*
Open fetches the initial page of query synchronously and resets to it.

Description: The current state stays visible while the page loads. A newer
Open or Reset cancels this one, and if its page still arrives it is
discarded instead of replacing the newer query.

Parameters:
  - ctx: context.Context
  - query: listing.Query

Returns:
  - error: ErrClosed, ErrSuperseded, or the wrapped fetch error
*/
func (session *Session) Open(ctx context.Context, query listing.Query) error {
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return ErrClosed
	}
	session.supersedeOpenLocked()
	ctx, cancel := context.WithCancel(ctx)
	session.opening = cancel
	open := session.opens
	session.mu.Unlock()
	defer cancel()

	page, err := session.fetcher.FetchPage(ctx, query)

	session.mu.Lock()
	defer session.mu.Unlock()

	if open != session.opens {
		session.logger.Debug("feed_stale_open_discarded",
			slog.String("query", query.Key()),
			slog.Bool("failed", err != nil),
		)
		return ErrSuperseded
	}
	session.opening = nil

	if err != nil {
		return fmt.Errorf("feed: open page %d: %w", query.Page, err)
	}
	session.abandonLocked()
	session.state = Start(query, page)
	return nil
}

// Reset replaces the state with a new query and its initial page, and
// abandons any fetch or Open still running for the previous query.
func (session *Session) Reset(query listing.Query, initial listing.Page) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.supersedeOpenLocked()
	session.abandonLocked()
	session.state = Start(query, initial)
}

// State returns a snapshot of the current state.
func (session *Session) State() State {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state
}

// Observe lays out the loaded vendors for viewport and starts loading the
// next page when the materialized rows reach the end of the loaded ones.
func (session *Session) Observe(viewport Viewport) Frame {
	session.mu.Lock()
	defer session.mu.Unlock()

	columns := Columns(viewport.Width)
	rows := Rows(session.state.Vendors, columns)
	window := VisibleWindow(viewport.ScrollTop, viewport.Height, len(rows))

	if NearEnd(window, len(rows)) {
		session.loadMoreLocked()
	}

	frame := Frame{
		Columns:     columns,
		RowCount:    len(rows),
		TotalHeight: TotalHeight(len(rows)),
		Window:      window,
		Rows:        [][]listing.Item{},
		Status:      session.state.Status,
		Err:         session.state.Err,
	}
	if !window.Empty() {
		frame.Rows = rows[window.First : window.Last+1]
	}
	return frame
}

// LoadMore starts fetching the next page. It reports false when a fetch is
// already running, the last fetch failed, or no pages remain.
func (session *Session) LoadMore() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.loadMoreLocked()
}

// Retry reissues the request that failed. It reports false unless the
// session is in StatusError.
func (session *Session) Retry() bool {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.closed {
		return false
	}

	next, request, ok := session.state.BeginRetry()
	if !ok {
		return false
	}
	session.state = next
	session.startLocked(request)
	return true
}

// Wait blocks until no fetch is running.
func (session *Session) Wait() {
	session.inflight.Wait()
}

// Close abandons any running fetch and waits for it to return.
func (session *Session) Close() {
	session.mu.Lock()
	session.closed = true
	session.supersedeOpenLocked()
	session.abandonLocked()
	session.mu.Unlock()

	session.inflight.Wait()
}

func (session *Session) loadMoreLocked() bool {
	if session.closed {
		return false
	}

	next, request, ok := session.state.BeginLoad()
	if !ok {
		return false
	}
	session.state = next
	session.startLocked(request)
	return true
}

func (session *Session) startLocked(request listing.Query) {
	ctx, cancel := context.WithCancel(context.Background())
	session.cancel = cancel
	generation := session.generation

	session.inflight.Add(1)
	go func() {
		defer session.inflight.Done()
		defer cancel()

		page, err := session.fetcher.FetchPage(ctx, request)
		session.complete(generation, request, page, err)
	}()
}

func (session *Session) complete(generation uint64, request listing.Query, page listing.Page, err error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if generation != session.generation {
		session.logger.Debug("feed_stale_page_discarded",
			slog.Int("page", request.Page),
			slog.Bool("failed", err != nil),
		)
		return
	}

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			session.logger.Warn("feed_page_fetch_failed",
				slog.Int("page", request.Page),
				slog.String("error", err.Error()),
			)
		}
		session.state = session.state.ApplyError(err)
		return
	}

	session.state = session.state.ApplyPage(page)
}

// abandonLocked moves to a new generation and cancels the running fetch.
func (session *Session) abandonLocked() {
	session.generation++
	if session.cancel != nil {
		session.cancel()
		session.cancel = nil
	}
}

// supersedeOpenLocked invalidates and cancels any Open still waiting on its
// initial page.
func (session *Session) supersedeOpenLocked() {
	session.opens++
	if session.opening != nil {
		session.opening()
		session.opening = nil
	}
}
