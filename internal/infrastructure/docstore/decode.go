package docstore

import (
	"encoding/json"

	"github.com/huntermobile/hunter-go/internal/domain"
)

// DecodeProduct turns one raw document into a normalized Product. A
// document without a nome field, or one that is not a JSON object of the
// expected field types, is dropped (ok=false), never surfaced as an
// error. Every other missing field takes its default: preco 0, link empty
// string, imagem_url absent.
func DecodeProduct(id string, raw []byte, origin string) (domain.Product, bool) {
	var doc struct {
		Nome      *string  `json:"nome"`
		Preco     *float64 `json:"preco"`
		Link      *string  `json:"link"`
		ImagemURL *string  `json:"imagem_url"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Product{}, false
	}
	if doc.Nome == nil {
		return domain.Product{}, false
	}

	p := domain.Product{
		ID:     id,
		Name:   *doc.Nome,
		Origin: origin,
	}
	if doc.Preco != nil {
		p.Price = *doc.Preco
	}
	if doc.Link != nil {
		p.Link = *doc.Link
	}
	if doc.ImagemURL != nil {
		p.ImageURL = *doc.ImagemURL
	}
	return p, true
}
