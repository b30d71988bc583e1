package scrape

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"sync/atomic"
	"time"

	"empleos-scraper/internal/config"
	"empleos-scraper/internal/extract"
	"empleos-scraper/internal/scrape/util"
	"empleos-scraper/internal/store"

	"golang.org/x/sync/errgroup"
)

// Mode selects how much of the board a run covers.
type Mode string

const (
	// ModeFull walks every listing page up to the configured cap.
	ModeFull Mode = "full"
	// ModeUpdate walks only the first page; new postings merge into the
	// existing collection by apply URL.
	ModeUpdate Mode = "update"
)

// Crawler walks the paginated listing, fetches each job-detail page,
// extracts a record and stores it. One bad page never aborts a run.
type Crawler struct {
	cfg     config.Config
	db      *sql.DB
	fetcher *Fetcher
	engine  *extract.Engine
	base    *url.URL
}

func NewCrawler(cfg config.Config, db *sql.DB) (*Crawler, error) {
	base, err := url.Parse(cfg.Scrape.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base_url: %w", err)
	}
	engine, err := extract.New(cfg.Scrape.BaseURL)
	if err != nil {
		return nil, err
	}
	limiter := util.NewHostLimiter(cfg.Scrape.RequestsPerSecond, cfg.Scrape.Burst)
	return &Crawler{
		cfg:     cfg,
		db:      db,
		fetcher: NewFetcher(cfg.Scrape.UserAgent, limiter),
		engine:  engine,
		base:    base,
	}, nil
}

// Run crawls in the given mode and returns how many new records were
// stored and how many detail pages were seen.
func (c *Crawler) Run(ctx context.Context, mode Mode) (added, seen int, err error) {
	maxPages := c.cfg.Scrape.MaxPages
	if mode == ModeUpdate {
		maxPages = 1
	}

	for page := 1; page <= maxPages; page++ {
		listingURL := ListingURL(c.cfg.Scrape.SearchURL, c.cfg.Scrape.Country, page)
		log.Printf("[listing] page %d/%d %s", page, maxPages, listingURL)

		doc, ferr := c.fetcher.Document(ctx, listingURL)
		if ferr != nil {
			if ctx.Err() != nil {
				return added, seen, ctx.Err()
			}
			log.Printf("[listing] page %d failed, skipping: %v", page, ferr)
			continue
		}

		links := ListingLinks(doc, c.base)
		log.Printf("[listing] page %d: %d job links", page, len(links))

		a, s := c.crawlDetails(ctx, links)
		added += a
		seen += s
		if ctx.Err() != nil {
			return added, seen, ctx.Err()
		}

		if !HasNextPage(doc) {
			log.Printf("[listing] no next-page link after page %d", page)
			break
		}

		if page < maxPages && c.cfg.Scrape.PageDelay() > 0 {
			select {
			case <-ctx.Done():
				return added, seen, ctx.Err()
			case <-time.After(c.cfg.Scrape.PageDelay()):
			}
		}
	}

	return added, seen, nil
}

// crawlDetails fetches and extracts each detail page with a bounded worker
// pool; the shared host limiter keeps the request rate polite regardless of
// worker count.
func (c *Crawler) crawlDetails(ctx context.Context, links []string) (added, seen int) {
	var addedN, seenN atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Scrape.Workers)

	for _, link := range links {
		link := link
		g.Go(func() error {
			doc, err := c.fetcher.Document(gctx, link)
			if err != nil {
				log.Printf("[detail] skip %s: %v", link, err)
				return nil // best-effort: don't cancel siblings
			}
			seenN.Add(1)

			rec := c.engine.Extract(doc, link)
			ok, ierr := store.InsertIfNew(gctx, c.db, rec)
			if ierr != nil {
				log.Printf("[detail] insert failed url=%s: %v", link, ierr)
				return nil
			}
			if ok {
				addedN.Add(1)
				log.Printf("[detail] added %q (%s)", rec.Title, rec.Location)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(addedN.Load()), int(seenN.Load())
}
