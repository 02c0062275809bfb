package movieitem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Fetcher interface {
	FetchMovie(ctx context.Context, id uint) (*Movie, error)
}

// FetcherFunc adapts a plain function to Fetcher.
type FetcherFunc func(ctx context.Context, id uint) (*Movie, error)

func (f FetcherFunc) FetchMovie(ctx context.Context, id uint) (*Movie, error) {
	return f(ctx, id)
}

// StatusError reports a non-success answer from the retrieval endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("movie endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("movie endpoint returned status %d: %s", e.StatusCode, e.Body)
}

// HTTPFetcher reads movies from GET {BaseURL}/movies/{id}.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (f *HTTPFetcher) FetchMovie(ctx context.Context, id uint) (*Movie, error) {
	url := fmt.Sprintf("%s/movies/%d", f.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var movie Movie
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return nil, fmt.Errorf("failed to decode movie %d: %w", id, err)
	}
	return &movie, nil
}
