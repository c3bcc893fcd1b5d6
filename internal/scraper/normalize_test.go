package scraper

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseBRL(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"R$ 89,90", 89.9},
		{"1.299", 1299},
		{"149", 149},
		{"R$ 2.499,00", 2499},
		{"", 0},
		{"sob consulta", 0},
		{"R$ ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBRL(tt.raw))
		})
	}
}

func TestNormalize_DropsCardsWithoutNameOrLink(t *testing.T) {
	raw := []RawProduct{
		{Nome: "Mouse Gamer", Preco: "R$ 149,90", Link: "https://loja/p/1"},
		{Nome: "", Preco: "R$ 10,00", Link: "https://loja/p/2"},
		{Nome: "Sem Link", Preco: "R$ 10,00", Link: "  "},
	}

	docs := Normalize(raw, discardLogger())

	require.Len(t, docs, 1)
	assert.Equal(t, "Mouse Gamer", docs[0].Data["nome"])
	assert.Equal(t, 149.9, docs[0].Data["preco"])
	assert.Equal(t, "https://loja/p/1", docs[0].Data["link"])
}

func TestNormalize_DedupesByLink(t *testing.T) {
	raw := []RawProduct{
		{Nome: "Mouse Gamer", Preco: "R$ 149,90", Link: "https://loja/p/1"},
		{Nome: "Mouse Gamer (repetido)", Preco: "R$ 139,90", Link: "https://loja/p/1"},
		{Nome: "Teclado", Preco: "R$ 299,90", Link: "https://loja/p/2"},
	}

	docs := Normalize(raw, discardLogger())

	require.Len(t, docs, 2)
	assert.Equal(t, "Mouse Gamer", docs[0].Data["nome"])
	assert.Equal(t, "Teclado", docs[1].Data["nome"])
}

func TestNormalize_CollapsesNameWhitespace(t *testing.T) {
	raw := []RawProduct{
		{Nome: "  Monitor\n 27\"  LED ", Link: "https://loja/p/3"},
	}

	docs := Normalize(raw, discardLogger())

	require.Len(t, docs, 1)
	assert.Equal(t, `Monitor 27" LED`, docs[0].Data["nome"])
}

func TestNormalize_OmitsEmptyImageURL(t *testing.T) {
	raw := []RawProduct{
		{Nome: "Sem Imagem", Link: "https://loja/p/4"},
		{Nome: "Com Imagem", Link: "https://loja/p/5", ImagemURL: "https://img/5.jpg"},
	}

	docs := Normalize(raw, discardLogger())

	require.Len(t, docs, 2)
	_, hasImage := docs[0].Data["imagem_url"]
	assert.False(t, hasImage)
	assert.Equal(t, "https://img/5.jpg", docs[1].Data["imagem_url"])
}

func TestNormalize_DocIDStableAcrossRescrapes(t *testing.T) {
	first := Normalize([]RawProduct{{Nome: "Mouse", Preco: "R$ 100,00", Link: "https://loja/p/1"}}, discardLogger())
	second := Normalize([]RawProduct{{Nome: "Mouse", Preco: "R$ 90,00", Link: "https://loja/p/1"}}, discardLogger())

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.NotEmpty(t, first[0].ID)
}
