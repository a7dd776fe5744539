// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taibuivan/vowdirectory/internal/core/listing"
)

// SearchPath is the vendor search endpoint relative to the API base URL.
const SearchPath = "/api/v1/vendors"

// defaultTimeout bounds a page fetch when no client is supplied.
const defaultTimeout = 10 * time.Second

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 64 << 10

// Client is a [Fetcher] for the vendor search endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient targets the API at baseURL (e.g. "https://vows.example").
// A nil httpClient gets a client with a 10s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		endpoint:   strings.TrimRight(baseURL, "/") + SearchPath,
		httpClient: httpClient,
	}
}

// ResponseError is returned when the endpoint answers with a non-200 status.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (err *ResponseError) Error() string {
	return fmt.Sprintf("vendor search returned %d: %s", err.StatusCode, err.Message)
}

/*
FetchPage requests one listing page.

Description: The query is sent in its canonical encoding (page and page size
always present, default sort omitted), so the server applies exactly the
parameters the session holds.

Parameters:
  - ctx: context.Context (cancelled when the session abandons the fetch)
  - query: listing.Query

Returns:
  - listing.Page: The decoded page
  - error: Transport errors, *ResponseError, or decoding errors
*/
func (client *Client) FetchPage(ctx context.Context, query listing.Query) (listing.Page, error) {
	target := client.endpoint + "?" + query.Encode().Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return listing.Page{}, fmt.Errorf("feed: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return listing.Page{}, fmt.Errorf("feed: fetch page %d: %w", query.Page, unwrapURLError(err))
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return listing.Page{}, responseError(response)
	}

	var page listing.Page
	if err := json.NewDecoder(response.Body).Decode(&page); err != nil {
		return listing.Page{}, fmt.Errorf("feed: decode page %d: %w", query.Page, err)
	}
	if page.Vendors == nil {
		page.Vendors = []listing.Item{}
	}
	return page, nil
}

func responseError(response *http.Response) error {
	responseErr := &ResponseError{StatusCode: response.StatusCode, Message: http.StatusText(response.StatusCode)}

	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		responseErr.Message = body.Error
	}
	return responseErr
}

// unwrapURLError drops the *url.Error wrapper, keeping the query string out
// of logged messages.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
