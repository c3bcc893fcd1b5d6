package docstore

import (
	"testing"

	"github.com/huntermobile/hunter-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProduct(t *testing.T) {
	raw := []byte(`{"nome":"Monitor 27","preco":1299.9,"link":"https://kabum/p/9","imagem_url":"https://img/9.jpg"}`)

	product, ok := DecodeProduct("9", raw, domain.OriginKabum)

	require.True(t, ok)
	assert.Equal(t, domain.Product{
		ID:       "9",
		Name:     "Monitor 27",
		Price:    1299.9,
		Link:     "https://kabum/p/9",
		ImageURL: "https://img/9.jpg",
		Origin:   domain.OriginKabum,
	}, product)
}

func TestDecodeProduct_MissingNomeIsDropped(t *testing.T) {
	_, ok := DecodeProduct("1", []byte(`{"preco":10.0,"link":"https://x"}`), domain.OriginKabum)

	assert.False(t, ok)
}

func TestDecodeProduct_InvalidJSONIsDropped(t *testing.T) {
	_, ok := DecodeProduct("1", []byte(`not a document`), domain.OriginKabum)

	assert.False(t, ok)
}

func TestDecodeProduct_WrongTypeIsDropped(t *testing.T) {
	_, ok := DecodeProduct("1", []byte(`{"nome":"Mouse","preco":"caro"}`), domain.OriginKabum)

	assert.False(t, ok)
}

func TestDecodeProduct_Defaults(t *testing.T) {
	product, ok := DecodeProduct("1", []byte(`{"nome":"Arroz Y"}`), domain.OriginMercadoLivre)

	require.True(t, ok)
	assert.Equal(t, "Arroz Y", product.Name)
	assert.Zero(t, product.Price)
	assert.Empty(t, product.Link)
	assert.Empty(t, product.ImageURL)
	assert.Equal(t, domain.OriginMercadoLivre, product.Origin)
}
