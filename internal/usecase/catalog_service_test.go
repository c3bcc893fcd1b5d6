package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/huntermobile/hunter-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearch_BlankQueryIsLocalNoOp(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		api := &mockHunterAPI{}
		svc := NewCatalogService(api, nil, nil, discardLogger())

		products, err := svc.Search(context.Background(), query)

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
		assert.Zero(t, api.calls, "blank query must not reach the API")
	}
}

func TestSearch_MapsResultsInBackendOrder(t *testing.T) {
	api := &mockHunterAPI{
		searchResp: &domain.ProductSearchResponse{
			Produtos: []domain.ProductDTO{
				{ID: "2", Nome: "Mouse B", Preco: 50, Origem: "Kabum"},
				{ID: "1", Nome: "Mouse A", Preco: 80, Origem: "Mercado Livre"},
			},
		},
	}
	svc := NewCatalogService(api, nil, nil, discardLogger())

	products, err := svc.Search(context.Background(), "mouse")

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mouse B", products[0].Name)
	assert.Equal(t, "Mouse A", products[1].Name)
	assert.Equal(t, 1, api.calls)
}

func TestSearch_PropagatesAPIError(t *testing.T) {
	api := &mockHunterAPI{searchErr: domain.ErrAPIUnreachable}
	svc := NewCatalogService(api, nil, nil, discardLogger())

	products, err := svc.Search(context.Background(), "mouse")

	assert.Nil(t, products)
	assert.ErrorIs(t, err, domain.ErrAPIUnreachable)
}

func TestBrowse_MergesAndSortsByNameCaseInsensitive(t *testing.T) {
	source := &mockProductSource{
		byCollection: map[string][]domain.Product{
			"produtos_kabum": {
				{ID: "k1", Name: "zebra case", Origin: domain.OriginKabum},
				{ID: "k2", Name: "Mouse X", Price: 50, Origin: domain.OriginKabum},
			},
			"produtos_mercadolivre": {
				{ID: "m1", Name: "Arroz Y", Origin: domain.OriginMercadoLivre},
			},
		},
	}
	svc := NewCatalogService(&mockHunterAPI{}, source, nil, discardLogger())

	products := svc.Browse(context.Background())

	require.Len(t, products, 3)
	assert.Equal(t, "Arroz Y", products[0].Name)
	assert.Equal(t, "Mouse X", products[1].Name)
	assert.Equal(t, "zebra case", products[2].Name)
	assert.Equal(t, 2, source.callCount())
}

func TestBrowse_MixedPartitions(t *testing.T) {
	source := &mockProductSource{
		byCollection: map[string][]domain.Product{
			"produtos_kabum": {
				{ID: "k1", Name: "Mouse X", Price: 50, Origin: domain.OriginKabum},
			},
			"produtos_mercadolivre": {
				{ID: "m1", Name: "Arroz Y", Origin: domain.OriginMercadoLivre},
			},
		},
	}
	svc := NewCatalogService(&mockHunterAPI{}, source, nil, discardLogger())

	products := svc.Browse(context.Background())

	require.Len(t, products, 2)
	assert.Equal(t, domain.Product{ID: "m1", Name: "Arroz Y", Origin: domain.OriginMercadoLivre}, products[0])
	assert.Equal(t, domain.Product{ID: "k1", Name: "Mouse X", Price: 50, Origin: domain.OriginKabum}, products[1])
}

func TestBrowse_ToleratesPartitionFailure(t *testing.T) {
	source := &mockProductSource{
		byCollection: map[string][]domain.Product{
			"produtos_mercadolivre": {
				{ID: "m1", Name: "Arroz Y", Origin: domain.OriginMercadoLivre},
			},
		},
		errs: map[string]error{
			"produtos_kabum": errors.New("connection refused"),
		},
	}
	svc := NewCatalogService(&mockHunterAPI{}, source, nil, discardLogger())

	products := svc.Browse(context.Background())

	require.Len(t, products, 1)
	assert.Equal(t, "Arroz Y", products[0].Name)
}

func TestBrowse_AllPartitionsFailing(t *testing.T) {
	source := &mockProductSource{
		errs: map[string]error{
			"produtos_kabum":        errors.New("down"),
			"produtos_mercadolivre": errors.New("down"),
		},
	}
	svc := NewCatalogService(&mockHunterAPI{}, source, nil, discardLogger())

	products := svc.Browse(context.Background())

	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestBrowse_CountsConcurrentFetches(t *testing.T) {
	byCollection := make(map[string][]domain.Product)
	partitions := make([]domain.Partition, 0, 8)
	for i := 0; i < 8; i++ {
		collection := fmt.Sprintf("produtos_%d", i)
		byCollection[collection] = []domain.Product{
			{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Produto %d", i)},
		}
		partitions = append(partitions, domain.Partition{Collection: collection, Origin: "Custom"})
	}
	source := &mockProductSource{byCollection: byCollection}
	svc := NewCatalogService(&mockHunterAPI{}, source, partitions, discardLogger())

	products := svc.Browse(context.Background())

	assert.Len(t, products, 8)
	assert.Equal(t, 8, source.callCount())
}

func TestBrowse_CustomPartitions(t *testing.T) {
	source := &mockProductSource{
		byCollection: map[string][]domain.Product{
			"produtos_custom": {{ID: "c1", Name: "Cabo HDMI"}},
		},
	}
	partitions := []domain.Partition{{Collection: "produtos_custom", Origin: "Custom"}}
	svc := NewCatalogService(&mockHunterAPI{}, source, partitions, discardLogger())

	products := svc.Browse(context.Background())

	require.Len(t, products, 1)
	assert.Equal(t, "Cabo HDMI", products[0].Name)
	assert.Equal(t, 1, source.callCount())
}
