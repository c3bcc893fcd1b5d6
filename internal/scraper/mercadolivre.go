package scraper

import (
	"fmt"
	"net/url"

	"github.com/huntermobile/hunter-go/internal/domain"
)

// MercadoLivre returns the source for a Mercado Livre search term. Result
// pages carry 50 items and paginate with a "_Desde_<offset>" suffix.
func MercadoLivre(term string) Source {
	escaped := url.PathEscape(term)
	return Source{
		Collection: "produtos_mercadolivre",
		Origin:     domain.OriginMercadoLivre,
		PageURL: func(page int) string {
			if page <= 1 {
				return fmt.Sprintf("https://lista.mercadolivre.com.br/%s", escaped)
			}
			return fmt.Sprintf("https://lista.mercadolivre.com.br/%s_Desde_%d", escaped, (page-1)*50+1)
		},
		ExtractJS: mercadoLivreExtractJS,
	}
}

// mercadoLivreExtractJS walks the search result list. The result item
// class keeps changing, so both known layouts are tried.
const mercadoLivreExtractJS = `
(function() {
	var out = [];
	var seen = {};

	var items = document.querySelectorAll('li.ui-search-layout__item, li.ui-search-result__wrapper');
	if (items.length === 0) {
		var lists = document.querySelectorAll('ol.ui-search-layout, ul.ui-search-layout');
		for (var l = 0; l < lists.length; l++) {
			var lis = lists[l].children;
			for (var c = 0; c < lis.length; c++) {
				if (lis[c].tagName === 'LI') items = Array.prototype.concat.call(
					Array.prototype.slice.call(items), [lis[c]]);
			}
		}
	}

	for (var i = 0; i < items.length; i++) {
		var li = items[i];
		var a = li.querySelector('a.ui-search-link') ||
			li.querySelector('a.ui-search-result__content') ||
			li.querySelector('a[href]');
		if (!a || !a.href || seen[a.href]) continue;

		var titleEl = li.querySelector('h2.ui-search-item__title') ||
			li.querySelector('.poly-component__title') ||
			li.querySelector('h2');
		var fraction = li.querySelector('.andes-money-amount__fraction');
		var cents = li.querySelector('.andes-money-amount__cents');
		var imgEl = li.querySelector('img');

		var price = '';
		if (fraction) {
			price = fraction.textContent;
			if (cents) price += ',' + cents.textContent;
		}

		seen[a.href] = true;
		out.push({
			nome: titleEl ? titleEl.textContent.trim() : '',
			preco: price,
			link: a.href,
			imagem_url: imgEl ? (imgEl.getAttribute('data-src') || imgEl.src) : ''
		});
	}
	return out;
})()
`
