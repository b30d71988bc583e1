package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"empleos-scraper/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves pages as parsed documents. A non-2xx status or network
// error is returned as-is; callers skip the page, there are no retries.
type Fetcher struct {
	hc        *http.Client
	limiter   *util.HostLimiter
	userAgent string
}

func NewFetcher(userAgent string, limiter *util.HostLimiter) *Fetcher {
	return &Fetcher{
		hc:        &http.Client{Timeout: 30 * time.Second},
		limiter:   limiter,
		userAgent: userAgent,
	}
}

func (f *Fetcher) Document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, pageURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", pageURL, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: status %d", pageURL, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}
