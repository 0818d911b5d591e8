package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// errUnexpectedStatus is returned when the feed responds outside the 2xx range.
	errUnexpectedStatus = errors.New("unexpected feed response status")
	// errRegionMissing is returned when the feed document lacks the monitored region.
	errRegionMissing = errors.New("region missing from feed document")
)

// Fetcher retrieves the alert status of a single region from the feed.
// It holds no mutable state between calls; a value is safe to reuse
// for the lifetime of the process.
type Fetcher struct {
	client  *http.Client
	dataURL string
	region  string
}

// New returns a Fetcher bound to a feed URL and region. The timeout bounds
// the whole request including body read; callers keep it below the poll
// interval so a hung feed cannot stall more than one cycle.
func New(dataURL, region string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		dataURL: dataURL,
		region:  region,
	}
}

// Fetch performs one feed request and returns the raw status string for the
// monitored region. Transport errors, non-2xx responses, malformed JSON, and
// a missing region key all surface as errors; the caller's recovery policy
// is identical for every kind (skip the cycle), so they are not distinguished
// beyond the wrapped message. Fetch never retries.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.dataURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch feed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s", errUnexpectedStatus, resp.Status)
	}

	// The feed is a flat object mapping region identifiers to status strings.
	var statuses map[string]string
	if err = json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		return "", fmt.Errorf("decode feed document: %w", err)
	}

	status, ok := statuses[f.region]
	if !ok {
		return "", fmt.Errorf("%w: %s", errRegionMissing, f.region)
	}

	return status, nil
}
