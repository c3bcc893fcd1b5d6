package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/huntermobile/hunter-go/config"
	"github.com/huntermobile/hunter-go/internal/infrastructure/docstore"
	"github.com/huntermobile/hunter-go/internal/scraper"
)

func main() {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("hunter-scraper starting",
		"pages", cfg.Scraper.Pages,
		"rate_limit_ms", cfg.Scraper.RateLimitMs,
		"kabum_category", cfg.Scraper.KabumCategory,
		"search_term", cfg.Scraper.SearchTerm)

	store, err := docstore.Open(cfg.Docstore.DSN())
	if err != nil {
		logger.Error("failed to connect to the document store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	s := scraper.New(scraper.Config{
		Pages:       cfg.Scraper.Pages,
		RateLimitMs: cfg.Scraper.RateLimitMs,
		ChromeBin:   cfg.Scraper.ChromeBin,
	}, logger)

	sources := []scraper.Source{
		scraper.Kabum(cfg.Scraper.KabumCategory),
		scraper.MercadoLivre(cfg.Scraper.SearchTerm),
	}

	ctx := context.Background()
	failures := 0
	for _, src := range sources {
		// One retailer failing must not starve the other partition.
		if err := ingest(ctx, s, store, src, logger); err != nil {
			logger.Error("source ingestion failed",
				"collection", src.Collection, "error", err)
			failures++
		}
	}

	if failures == len(sources) {
		logger.Error("every source failed, nothing ingested")
		os.Exit(1)
	}
	logger.Info("ingestion complete", "sources", len(sources), "failed", failures)
}

func ingest(ctx context.Context, s *scraper.Scraper, store *docstore.Store, src scraper.Source, logger *slog.Logger) error {
	raw, err := s.Collect(ctx, src)
	if err != nil {
		return err
	}

	docs := scraper.Normalize(raw, logger)
	if err := store.Upsert(ctx, src.Collection, docs); err != nil {
		return err
	}

	total, err := store.Count(ctx, src.Collection)
	if err != nil {
		return err
	}
	logger.Info("partition updated",
		"collection", src.Collection,
		"upserted", len(docs),
		"total_documents", total)
	return nil
}
