package domain

// Product is the normalized listing shown to the user, regardless of which
// backend produced it.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Link     string  `json:"link"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Origin   string  `json:"origin"`
}

// Origin labels for the two document-store partitions plus the fallback
// used when the search API omits the tag.
const (
	OriginKabum        = "Kabum"
	OriginMercadoLivre = "Mercado Livre"
	OriginHunter       = "Hunter"
)

// Partition identifies one independently queried document collection.
// Document ids are NOT unique across partitions: both retailer catalogs may
// legitimately reuse the same id, so Product.ID is a diffing hint, not a
// global key.
type Partition struct {
	Collection string
	Origin     string
}

// DefaultPartitions are the two retailer catalogs the reader merges.
var DefaultPartitions = []Partition{
	{Collection: "produtos_kabum", Origin: OriginKabum},
	{Collection: "produtos_mercadolivre", Origin: OriginMercadoLivre},
}

// Document is one schemaless record inside a docstore partition.
type Document struct {
	ID   string
	Data map[string]any
}
