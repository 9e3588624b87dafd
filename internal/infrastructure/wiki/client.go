// Package wiki is the outbound HTTP adapter for the Wikipedia
// "On This Day" feed.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/halmos/timely/internal/domain"
	"github.com/halmos/timely/internal/ports"
	"github.com/halmos/timely/internal/version"
)

const (
	requestTimeout = 10 * time.Second

	// Month and day are unpadded decimal; the feed rejects zero-padding.
	endpointFormat = "%s/api/rest_v1/feed/onthisday/%s/%d/%d"
	hostFormat     = "https://%s.wikipedia.org"
)

// Client performs a single blocking GET per fetch. No retries, no backoff:
// a failure is reported directly to the caller.
type Client struct {
	httpClient   *http.Client
	baseOverride string
	userAgent    string
}

// NewClient builds a feed client. baseOverride, when non-empty, replaces the
// per-language Wikipedia host (used by integration tests).
func NewClient(baseOverride string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		baseOverride: baseOverride,
		userAgent:    "timely/" + version.Version,
	}
}

// Fetch implements ports.HistorySource. Transport failures, non-2xx statuses
// and malformed bodies surface as three distinct error types.
func (c *Client) Fetch(ctx context.Context, language string, category domain.Category, month, day int) (domain.OnThisDayResponse, error) {
	url := c.requestURL(language, category, month, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.OnThisDayResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.OnThisDayResponse{}, &domain.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.OnThisDayResponse{}, &domain.StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	var decoded domain.OnThisDayResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.OnThisDayResponse{}, &domain.DecodeError{Err: err}
	}
	return decoded, nil
}

func (c *Client) requestURL(language string, category domain.Category, month, day int) string {
	base := c.baseOverride
	if base == "" {
		base = fmt.Sprintf(hostFormat, language)
	}
	return fmt.Sprintf(endpointFormat, base, category, month, day)
}

var _ ports.HistorySource = (*Client)(nil)
