// Package links builds product search URLs for the supported affiliate
// stores and opens them in the system browser.
package links

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/browser"
)

const (
	StoreMercadoLivre = "mercado-livre"
	StoreAmazon       = "amazon"
	StoreCasasBahia   = "casas-bahia"
)

var whitespace = regexp.MustCompile(`\s+`)

// Stores lists the supported store identifiers.
func Stores() []string {
	return []string{StoreCasasBahia, StoreMercadoLivre, StoreAmazon}
}

// SearchURL returns the store's product search URL for a product name. The
// URL shapes match what each storefront expects, so they are built per store
// rather than generically.
func SearchURL(store, productName string) (string, error) {
	name := strings.TrimSpace(productName)
	if name == "" {
		return "", fmt.Errorf("product name is required")
	}

	switch strings.ToLower(strings.TrimSpace(store)) {
	case StoreMercadoLivre:
		slug := whitespace.ReplaceAllString(strings.ToLower(name), "-")
		return fmt.Sprintf("https://lista.mercadolivre.com.br/%s#D[A:%s]", slug, url.PathEscape(name)), nil
	case StoreAmazon:
		return fmt.Sprintf("https://www.amazon.com.br/s?k=%s&__mk_pt_BR=%%C3%%85M%%C3%%85%%C5%%BD%%C3%%95%%C3%%91", url.QueryEscape(name)), nil
	case StoreCasasBahia:
		slug := whitespace.ReplaceAllString(strings.ToLower(name), "-")
		return fmt.Sprintf("https://www.casasbahia.com.br/%s/b?filter=lojistas-l10037", slug), nil
	default:
		return "", fmt.Errorf("unknown store %q (expected one of: %s)", store, strings.Join(Stores(), ", "))
	}
}

// Open launches the URL in the default external browser.
func Open(rawURL string) error {
	if err := browser.OpenURL(rawURL); err != nil {
		return fmt.Errorf("open %s: %w", rawURL, err)
	}
	return nil
}
