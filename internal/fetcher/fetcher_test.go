package fetcher

import (
	"context"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

const testFeedURL = "https://alerts.example.com/statuses.json"

// newMockedFetcher builds a Fetcher whose HTTP client is intercepted by httpmock.
func newMockedFetcher(t *testing.T, region string) *Fetcher {
	t.Helper()

	f := New(testFeedURL, region, 5*time.Second)
	httpmock.ActivateNonDefault(f.client)
	t.Cleanup(httpmock.DeactivateAndReset)

	return f
}

// TestFetchReturnsRegionStatus verifies the happy path: well-formed document,
// region present, status string returned untouched.
func TestFetchReturnsRegionStatus(t *testing.T) {
	f := newMockedFetcher(t, "kyiv")
	httpmock.RegisterResponder("GET", testFeedURL,
		httpmock.NewStringResponder(200, `{"kyiv":"full","lviv":"no_data"}`))

	status, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "full", status)
}

// TestFetchPassesUnknownStatusesThrough ensures the fetcher does not
// interpret status values; classification belongs to the state machine.
func TestFetchPassesUnknownStatusesThrough(t *testing.T) {
	f := newMockedFetcher(t, "kyiv")
	httpmock.RegisterResponder("GET", testFeedURL,
		httpmock.NewStringResponder(200, `{"kyiv":"partial"}`))

	status, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "partial", status)
}

// TestFetchNon2xxResponse ensures a bad response code surfaces as an error.
func TestFetchNon2xxResponse(t *testing.T) {
	f := newMockedFetcher(t, "kyiv")
	httpmock.RegisterResponder("GET", testFeedURL,
		httpmock.NewStringResponder(503, "upstream down"))

	_, err := f.Fetch(context.Background())
	require.ErrorIs(t, err, errUnexpectedStatus)
}

// TestFetchMalformedDocument ensures broken JSON surfaces as an error.
func TestFetchMalformedDocument(t *testing.T) {
	f := newMockedFetcher(t, "kyiv")
	httpmock.RegisterResponder("GET", testFeedURL,
		httpmock.NewStringResponder(200, `{"kyiv":`))

	_, err := f.Fetch(context.Background())
	require.Error(t, err)
}

// TestFetchMissingRegion ensures a document without the monitored region
// surfaces as an error rather than an empty status.
func TestFetchMissingRegion(t *testing.T) {
	f := newMockedFetcher(t, "kyiv")
	httpmock.RegisterResponder("GET", testFeedURL,
		httpmock.NewStringResponder(200, `{"lviv":"full"}`))

	_, err := f.Fetch(context.Background())
	require.ErrorIs(t, err, errRegionMissing)
}

// TestFetchTransportError ensures connection failures fold into the same
// error return as every other failure kind.
func TestFetchTransportError(t *testing.T) {
	f := newMockedFetcher(t, "kyiv")
	httpmock.RegisterResponder("GET", testFeedURL,
		httpmock.NewErrorResponder(context.DeadlineExceeded))

	_, err := f.Fetch(context.Background())
	require.Error(t, err)
}

// TestFetchHonorsContextCancellation ensures an already-canceled context
// aborts the request instead of blocking.
func TestFetchHonorsContextCancellation(t *testing.T) {
	f := newMockedFetcher(t, "kyiv")
	httpmock.RegisterResponder("GET", testFeedURL,
		httpmock.NewStringResponder(200, `{"kyiv":"full"}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx)
	require.Error(t, err)
}
