package scraper

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/huntermobile/hunter-go/internal/domain"
)

// brlDigits keeps only digits and the decimal comma of a BRL price string.
var brlDigits = regexp.MustCompile(`[^0-9,]`)

// ParseBRL parses display prices like "R$ 1.234,56" into 1234.56.
// Unparseable input yields 0, the catalog's price default.
func ParseBRL(raw string) float64 {
	cleaned := brlDigits.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// Normalize converts raw scraped cards into docstore documents. Cards
// missing a name or link are dropped, duplicate links are collapsed, and
// document ids derive from the listing link so a re-scrape updates each
// product in place.
func Normalize(raw []RawProduct, logger *slog.Logger) []domain.Document {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]struct{}, len(raw))
	docs := make([]domain.Document, 0, len(raw))

	for _, r := range raw {
		name := collapseSpaces(r.Nome)
		link := strings.TrimSpace(r.Link)
		if name == "" || link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}

		data := map[string]any{
			"nome":  name,
			"preco": ParseBRL(r.Preco),
			"link":  link,
		}
		if img := strings.TrimSpace(r.ImagemURL); img != "" {
			data["imagem_url"] = img
		}

		docs = append(docs, domain.Document{ID: docID(link), Data: data})
	}

	logger.Info("normalized scraped cards",
		"raw", len(raw), "kept", len(docs), "dropped", len(raw)-len(docs))
	return docs
}

// docID derives a stable document id from the listing link.
func docID(link string) string {
	sum := sha256.Sum256([]byte(link))
	return hex.EncodeToString(sum[:12])
}

// collapseSpaces trims and collapses internal whitespace.
func collapseSpaces(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
