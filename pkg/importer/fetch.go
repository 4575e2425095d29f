package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves remote catalog pages so URL imports can be tested
// without the network.
type Fetcher interface {
	FetchHTML(ctx context.Context, url string) ([]byte, error)
}

type restyFetcher struct {
	client   *resty.Client
	maxBytes int64
}

func NewFetcher(maxBytes int64) Fetcher {
	c := resty.New().SetTimeout(20 * time.Second)
	return &restyFetcher{client: c, maxBytes: maxBytes}
}

func (f *restyFetcher) FetchHTML(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	raw := resp.RawBody()
	defer raw.Close()

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode())
	}
	ct := strings.ToLower(resp.Header().Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}
	limited := io.LimitedReader{R: raw, N: f.maxBytes}
	return io.ReadAll(&limited)
}

type mockFetcher struct {
	pages map[string][]byte
}

// NewMockFetcher serves canned pages keyed by URL.
func NewMockFetcher(pages map[string]string) Fetcher {
	m := &mockFetcher{pages: map[string][]byte{}}
	for u, body := range pages {
		m.pages[u] = []byte(body)
	}
	return m
}

func (m *mockFetcher) FetchHTML(_ context.Context, url string) ([]byte, error) {
	if b, ok := m.pages[url]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("no page for %s", url)
}
