package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/storage/gen/postgres/public/table"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/storage/gen/postgres/public/model"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertPackages is a helper test function to insert packages.
func InsertPackages(t *testing.T, exc qrm.Executable, packages ...pgmodels.Package) {
	t.Helper()

	if len(packages) == 0 {
		return
	}

	toInsert := make([]pgmodels.Package, 0, len(packages))
	toInsert = append(toInsert, packages...)

	_, err := table.Package.INSERT(table.Package.AllColumns.Except(table.Package.ID)).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert packages", err)
	}
}

// GetPackages is a helper test function to get all packages ordered by id.
func GetPackages(t *testing.T, queryable qrm.Queryable) []pgmodels.Package {
	t.Helper()

	packages := []pgmodels.Package{}
	err := table.Package.SELECT(table.Package.AllColumns).
		WHERE(table.Package.ID.IS_NOT_NULL()).
		ORDER_BY(table.Package.ID.ASC()).
		Query(queryable, &packages)
	if err != nil {
		t.Fatal("can't get packages", err)
	}

	return packages
}

// GetPackageByCode is a helper test function to get one package by external code.
func GetPackageByCode(t *testing.T, queryable qrm.Queryable, externalCode string) *pgmodels.Package {
	t.Helper()

	var pkg pgmodels.Package
	err := table.Package.SELECT(table.Package.AllColumns).
		WHERE(table.Package.ExternalCode.EQ(pg.String(externalCode))).
		Query(queryable, &pkg)
	if err != nil {
		t.Fatal("can't get package", err)
	}

	return &pkg
}

// CleanupData is a helper test function to remove all packages.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Package.DELETE().WHERE(table.Package.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete packages data", err)
	}
}
