package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Fetcher pulls the page and FAQ feeds over HTTP
type Fetcher struct {
	client *http.Client
	logger *logrus.Entry
}

func NewFetcher(timeout time.Duration, logger *logrus.Entry) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
}

// FetchPages retrieves the page feed. A failed request or unparseable
// body degrades to an empty slice with the error returned for logging;
// callers keep going with whatever they got.
func (f *Fetcher) FetchPages(ctx context.Context, url string) ([]PageRecord, error) {
	var pages []PageRecord
	if err := f.fetchJSON(ctx, url, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// FetchFaqs retrieves the FAQ feed with the same degrade-to-empty policy.
func (f *Fetcher) FetchFaqs(ctx context.Context, url string) ([]FaqRecord, error) {
	var faqs []FaqRecord
	if err := f.fetchJSON(ctx, url, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (f *Fetcher) fetchJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// Always re-read the feed; stale search content is worse than the
	// extra transfer.
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("received non-2xx status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing error: %w", err)
	}
	return nil
}
