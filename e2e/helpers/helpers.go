// Package helpers holds shared helpers of the end-to-end test.
package helpers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
	pgmodels "github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/storage/gen/postgres/public/model"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/storage/storagetesting"
)

// CatalogPackage describes one package served by the mocked catalog site.
type CatalogPackage struct {
	ExternalCode string
	Title        string
	PriceUSD     float64
	TaxesUSD     float64
	Includes     []string
	NotIncludes  []string
}

// GenerateCatalogPackages returns n catalog packages with distinct codes.
func GenerateCatalogPackages(n int) []CatalogPackage {
	packages := make([]CatalogPackage, 0, n)
	for i := 0; i < n; i++ {
		packages = append(packages, CatalogPackage{
			ExternalCode: fmt.Sprintf("MT-%d", 10001+i),
			Title:        fmt.Sprintf("Paquete %d", i+1),
			PriceUSD:     1000 + float64(i)*10,
			TaxesUSD:     100 + float64(i),
			Includes:     []string{"Vuelo redondo", "Hotel 4 estrellas"},
			NotIncludes:  []string{"Propinas"},
		})
	}
	return packages
}

// CatalogPagePath returns the /viaje/ path the package is served under.
func CatalogPagePath(pkg CatalogPackage) string {
	return fmt.Sprintf("/viaje/paquete-%s.html", pkg.ExternalCode)
}

// CatalogPageHTML renders the package as a catalog detail page.
func CatalogPageHTML(pkg CatalogPackage) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	fmt.Fprintf(&sb, "  <h1>%s</h1>\n", pkg.Title)
	sb.WriteString("  <div class=\"mt-precio\">\n")
	fmt.Fprintf(&sb, "    <span class=\"precio-monto\">USD %.2f</span>\n", pkg.PriceUSD)
	fmt.Fprintf(&sb, "    <span class=\"impuestos-monto\">$ %.2f</span>\n", pkg.TaxesUSD)
	sb.WriteString("  </div>\n")
	sb.WriteString("  <h3>Incluye</h3>\n  <ul>\n")
	for _, item := range pkg.Includes {
		fmt.Fprintf(&sb, "    <li>%s</li>\n", item)
	}
	sb.WriteString("  </ul>\n")
	sb.WriteString("  <h3>No incluye</h3>\n  <ul>\n")
	for _, item := range pkg.NotIncludes {
		fmt.Fprintf(&sb, "    <li>%s</li>\n", item)
	}
	sb.WriteString("  </ul>\n</body>\n</html>")
	return sb.String()
}

// PrepareCatalogServer starts an HTTP server serving the packages as catalog
// pages. Unknown paths get 404.
func PrepareCatalogServer(t *testing.T, packages []CatalogPackage) *httptest.Server {
	t.Helper()

	pages := make(map[string]string, len(packages))
	for _, pkg := range packages {
		pages[CatalogPagePath(pkg)] = CatalogPageHTML(pkg)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		page, ok := pages[req.URL.Path]
		if !ok {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}
		wrt.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, err := wrt.Write([]byte(page))
		require.NoError(t, err, "can't write page body")
	}))
	t.Cleanup(srv.Close)

	return srv
}

// SeedPendingPackages inserts the packages as pending rows pointing at the
// catalog server.
func SeedPendingPackages(t *testing.T, exc qrm.Executable, baseURL string, packages []CatalogPackage) {
	t.Helper()

	rows := make([]pgmodels.Package, 0, len(packages))
	for _, pkg := range packages {
		sourceURL := baseURL + CatalogPagePath(pkg)
		rows = append(rows, pgmodels.Package{
			ExternalCode: pkg.ExternalCode,
			Title:        pkg.Title,
			SourceURL:    &sourceURL,
			ScrapeStatus: models.ScrapeStatusPending,
		})
	}

	storagetesting.InsertPackages(t, exc, rows...)
}

// WaitForPackagesScraped blocks until every row has scrape_status scraped.
func WaitForPackagesScraped(t *testing.T, queryable qrm.Queryable, count int) []pgmodels.Package {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)
	for {
		<-time.After(time.Millisecond * 250)

		rows := storagetesting.GetPackages(t, queryable)
		scraped := 0
		for _, row := range rows {
			if row.ScrapeStatus == models.ScrapeStatusScraped {
				scraped++
			}
		}
		if len(rows) == count && scraped == count {
			return rows
		}

		if time.Now().After(deadline) {
			t.Fatalf("packages not scraped in time: %d of %d", scraped, count)
		}
	}
}

// DeclareRMQExchange is helper function to declare RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", err)
	}
}

// DeclareRMQQueue is helper function to declare RMQ queue and bind it to exchange.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", err)
	}
}
