package hunterapi

import "github.com/huntermobile/hunter-go/internal/domain"

// MapProduct converts a search DTO into the normalized Product record,
// applying the documented fallbacks: a missing id falls back to the listing
// link, a missing origin tag to the generic Hunter label.
func MapProduct(dto domain.ProductDTO) domain.Product {
	id := dto.ID
	if id == "" {
		id = dto.Link
	}

	origin := dto.Origem
	if origin == "" {
		origin = domain.OriginHunter
	}

	return domain.Product{
		ID:       id,
		Name:     dto.Nome,
		Price:    dto.Preco,
		Link:     dto.Link,
		ImageURL: dto.ImagemURL,
		Origin:   origin,
	}
}

// MapSearchResults maps a full search response, preserving backend order.
func MapSearchResults(resp *domain.ProductSearchResponse) []domain.Product {
	if resp == nil {
		return []domain.Product{}
	}

	products := make([]domain.Product, 0, len(resp.Produtos))
	for _, dto := range resp.Produtos {
		products = append(products, MapProduct(dto))
	}
	return products
}
