package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/huntermobile/hunter-go/internal/domain"
	"github.com/huntermobile/hunter-go/internal/infrastructure/hunterapi"
)

// CatalogService aggregates product listings. It runs two deliberately
// separate strategies: Search goes to the Hunter API and keeps the
// backend's price ordering; Browse pulls the document-store partitions and
// re-sorts by name. They feed different screens and must not be unified.
type CatalogService struct {
	api        domain.HunterAPI
	source     domain.ProductSource
	partitions []domain.Partition
	logger     *slog.Logger
}

// NewCatalogService creates a catalog service. Nil partitions fall back to
// the two retailer defaults; a nil logger falls back to slog.Default.
func NewCatalogService(api domain.HunterAPI, source domain.ProductSource, partitions []domain.Partition, logger *slog.Logger) *CatalogService {
	if len(partitions) == 0 {
		partitions = domain.DefaultPartitions
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		api:        api,
		source:     source,
		partitions: partitions,
		logger:     logger,
	}
}

// Search queries the combined catalog through the Hunter API. A blank
// query is a defined no-op: it returns an empty slice without touching the
// network.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Product{}, nil
	}

	resp, err := s.api.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	return hunterapi.MapSearchResults(resp), nil
}

type partitionResult struct {
	partition domain.Partition
	products  []domain.Product
	err       error
}

// Browse reads both document-store partitions concurrently and merges
// whatever arrived. A failed partition degrades to an empty list; the
// other partition's records still appear.
func (s *CatalogService) Browse(ctx context.Context) []domain.Product {
	results := make([]partitionResult, len(s.partitions))

	var wg sync.WaitGroup
	for i, part := range s.partitions {
		wg.Add(1)
		go func(i int, part domain.Partition) {
			defer wg.Done()
			products, err := s.source.FetchCollection(ctx, part.Collection, part.Origin)
			results[i] = partitionResult{partition: part, products: products, err: err}
		}(i, part)
	}
	wg.Wait()

	return s.mergeTolerant(results)
}

// mergeTolerant concatenates the partitions that answered and sorts the
// result by case-insensitive name ascending. Partition failures are logged
// and not propagated.
func (s *CatalogService) mergeTolerant(results []partitionResult) []domain.Product {
	merged := make([]domain.Product, 0)
	for _, r := range results {
		if r.err != nil {
			s.logger.Warn("partition fetch failed",
				"collection", r.partition.Collection,
				"origin", r.partition.Origin,
				"error", r.err)
			continue
		}
		merged = append(merged, r.products...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return strings.ToLower(merged[i].Name) < strings.ToLower(merged[j].Name)
	})
	return merged
}
