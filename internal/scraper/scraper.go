// Package scraper collects product listings from the retailer sites that
// feed the document store's partitions.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

// RawProduct is one unprocessed product card as extracted in the browser.
// Prices come out as display strings ("R$ 1.234,56") and are parsed during
// normalization.
type RawProduct struct {
	Nome      string `json:"nome"`
	Preco     string `json:"preco"`
	Link      string `json:"link"`
	ImagemURL string `json:"imagem_url"`
}

// Source describes one retailer listing page set: which docstore partition
// it feeds, how to build the URL of each page, and the in-page script that
// extracts the product cards.
type Source struct {
	Collection string
	Origin     string
	PageURL    func(page int) string
	ExtractJS  string
}

// Config holds scraping knobs.
type Config struct {
	Pages       int
	RateLimitMs int
	ChromeBin   string
}

// Scraper drives a headless browser over a Source's pages.
type Scraper struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a ready-to-use Scraper.
func New(cfg Config, logger *slog.Logger) *Scraper {
	if cfg.Pages < 1 {
		cfg.Pages = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{cfg: cfg, logger: logger}
}

// Collect scrapes up to cfg.Pages listing pages of one source and returns
// every raw card found. Pagination stops early on an empty page or a page
// error; cards collected so far are still returned.
func (s *Scraper) Collect(ctx context.Context, src Source) ([]RawProduct, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if s.cfg.ChromeBin != "" {
		opts = append(opts, chromedp.ExecPath(s.cfg.ChromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	var all []RawProduct
	for page := 1; page <= s.cfg.Pages; page++ {
		pageURL := src.PageURL(page)
		s.logger.Info("scraping page",
			"origin", src.Origin, "page", page, "url", pageURL)

		items, err := s.collectPage(browserCtx, pageURL, src.ExtractJS)
		if err != nil {
			s.logger.Warn("page scrape failed",
				"origin", src.Origin, "page", page, "error", err)
			break
		}
		if len(items) == 0 {
			s.logger.Warn("page returned no cards, stopping",
				"origin", src.Origin, "page", page)
			break
		}

		all = append(all, items...)

		if page < s.cfg.Pages {
			time.Sleep(time.Duration(s.cfg.RateLimitMs) * time.Millisecond)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("scraper: no products collected from %s", src.Origin)
	}
	s.logger.Info("scrape complete", "origin", src.Origin, "raw_cards", len(all))
	return all, nil
}

func (s *Scraper) collectPage(parent context.Context, pageURL, extractJS string) ([]RawProduct, error) {
	tabCtx, cancelTab := chromedp.NewContext(parent)
	defer cancelTab()

	ctx, cancelTimeout := context.WithTimeout(tabCtx, 90*time.Second)
	defer cancelTimeout()

	var items []RawProduct
	err := chromedp.Run(ctx,
		chromedp.Navigate(pageURL),
		// Listing grids render client-side; give them a moment.
		chromedp.Sleep(4*time.Second),
		chromedp.Evaluate(extractJS, &items),
	)
	if err != nil {
		return nil, err
	}
	return items, nil
}
