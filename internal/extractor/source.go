package extractor

import (
	"net/url"
	"regexp"
	"strings"
)

// SourceKind tags which of the two source-site page families a URL belongs to.
type SourceKind int

const (
	// SourceCatalog is the standard package page: /viaje/<slug>-<code>.html.
	SourceCatalog SourceKind = iota
	// SourceReseller is the alternate reseller page: /mega-conexion/paquete.php?Exp=<code>.
	SourceReseller
)

// SourcePage is a source URL resolved to its page family. The parsing rules
// are selected once from Kind, never from ad-hoc string checks downstream.
type SourcePage struct {
	Kind         SourceKind
	URL          string
	ExternalCode string
}

var catalogCodePattern = regexp.MustCompile(`-([A-Z]{2}-\d+)\.html$`)

// DetectSource resolves a raw source URL into a SourcePage.
// It returns ErrUnknownSource when the URL matches neither page family.
func DetectSource(rawURL string) (SourcePage, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return SourcePage{}, ErrUnknownSource
	}

	if strings.Contains(parsed.Path, "/viaje/") {
		page := SourcePage{
			Kind: SourceCatalog,
			URL:  rawURL,
		}
		if match := catalogCodePattern.FindStringSubmatch(parsed.Path); match != nil {
			page.ExternalCode = match[1]
		}
		return page, nil
	}

	if strings.HasSuffix(parsed.Path, "/paquete.php") {
		code := parsed.Query().Get("Exp")
		if code == "" {
			return SourcePage{}, ErrUnknownSource
		}
		return SourcePage{
			Kind:         SourceReseller,
			URL:          rawURL,
			ExternalCode: code,
		}, nil
	}

	return SourcePage{}, ErrUnknownSource
}
