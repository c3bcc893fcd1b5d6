package scraper

import (
	"fmt"

	"github.com/huntermobile/hunter-go/internal/domain"
)

// Kabum returns the source for a Kabum category page set, e.g.
// "hardware/monitores".
func Kabum(category string) Source {
	return Source{
		Collection: "produtos_kabum",
		Origin:     domain.OriginKabum,
		PageURL: func(page int) string {
			return fmt.Sprintf("https://www.kabum.com.br/%s?page_number=%d&page_size=20", category, page)
		},
		ExtractJS: kabumExtractJS,
	}
}

// kabumExtractJS pulls the product grid cards. Kabum renames CSS classes
// between deploys, so the selectors try current names first and fall back
// to matching by href shape.
const kabumExtractJS = `
(function() {
	var out = [];
	var seen = {};

	function push(name, price, link, img) {
		if (!link || seen[link]) return;
		seen[link] = true;
		out.push({
			nome: (name || '').trim(),
			preco: (price || '').trim(),
			link: link,
			imagem_url: img || ''
		});
	}

	var cards = document.querySelectorAll('article.productCard, div.productCard');
	if (cards.length === 0) {
		// Fallback: any anchor that looks like a product page
		cards = document.querySelectorAll('a[href*="/produto/"]');
		for (var i = 0; i < cards.length; i++) {
			var a = cards[i];
			var nameEl = a.querySelector('.nameCard, h2, h3, span');
			var priceEl = a.querySelector('.priceCard, [class*="price"]');
			var imgEl = a.querySelector('img');
			push(nameEl ? nameEl.textContent : a.textContent,
				priceEl ? priceEl.textContent : '',
				a.href,
				imgEl ? (imgEl.getAttribute('data-src') || imgEl.src) : '');
		}
		return out;
	}

	for (var j = 0; j < cards.length; j++) {
		var card = cards[j];
		var linkEl = card.querySelector('a.productLink, a[href*="/produto/"]');
		var nameEl2 = card.querySelector('.nameCard, [class*="nameCard"]');
		var priceEl2 = card.querySelector('.priceCard, [class*="priceCard"]');
		var imgEl2 = card.querySelector('img');
		push(nameEl2 ? nameEl2.textContent : '',
			priceEl2 ? priceEl2.textContent : '',
			linkEl ? linkEl.href : '',
			imgEl2 ? (imgEl2.getAttribute('data-src') || imgEl2.src) : '');
	}
	return out;
})()
`
