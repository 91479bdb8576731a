package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/storage/gen/postgres/public/table"
	"golang.org/x/sync/errgroup"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/storage/gen/postgres/public/model"
)

// DefaultLeaseTTL is how long a selected package stays claimed by one batch
// before it becomes eligible again after a crash.
const DefaultLeaseTTL = 10 * time.Minute

// Postgres is the catalog store for travel packages.
type Postgres struct {
	db       *sql.DB
	leaseTTL time.Duration
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db:       db,
		leaseTTL: DefaultLeaseTTL,
	}
}

// ListEligible returns the scrapeable packages of one offset window, in
// ascending id order. The window is addressed over all packages with a
// source URL, so the same limit/offset always names the same id slice no
// matter which rows hold leases. Live-leased rows inside the window are
// skipped without shifting the positions of later windows. Returned
// packages are stamped with a fresh lease inside the same transaction, so
// a concurrent batch cannot claim them while this one is working.
func (p Postgres) ListEligible(ctx context.Context, limit, offset int64) ([]models.Package, error) {
	now := time.Now().UTC()
	var packages []models.Package

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var window []pgmodels.Package
		err := table.Package.SELECT(table.Package.AllColumns).
			WHERE(table.Package.SourceURL.IS_NOT_NULL()).
			ORDER_BY(table.Package.ID.ASC()).
			LIMIT(limit).
			OFFSET(offset).
			QueryContext(ctx, tx, &window)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't select window: %w", err)
		}

		dbPackages := make([]pgmodels.Package, 0, len(window))
		for ix := range window {
			lease := window[ix].ScrapeLeaseUntil
			if lease == nil || lease.Before(now) {
				dbPackages = append(dbPackages, window[ix])
			}
		}

		if len(dbPackages) == 0 {
			return nil
		}

		ids := make([]pg.Expression, 0, len(dbPackages))
		for ix := range dbPackages {
			ids = append(ids, pg.Int32(dbPackages[ix].ID))
		}

		_, err = table.Package.UPDATE().
			SET(table.Package.ScrapeLeaseUntil.SET(pg.TimestampzT(now.Add(p.leaseTTL)))).
			WHERE(table.Package.ID.IN(ids...)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't lease selected packages: %w", err)
		}

		packages = make([]models.Package, 0, len(dbPackages))
		for ix := range dbPackages {
			pkg, err := ToAppPackage(&dbPackages[ix])
			if err != nil {
				return fmt.Errorf("can't convert package %q: %w", dbPackages[ix].ExternalCode, err)
			}
			packages = append(packages, *pkg)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't list eligible packages: %w", err)
	}

	return packages, nil
}

// MergeExtraction merges extracted fields into the package identified by
// externalCode and returns the updated package. Fields absent from the
// extraction keep their stored values. The scrape lease is released.
func (p Postgres) MergeExtraction(
	ctx context.Context,
	externalCode string,
	extraction *models.Extraction,
	now time.Time,
) (*models.Package, error) {
	var merged *models.Package

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var dbPkg pgmodels.Package
		err := table.Package.SELECT(table.Package.AllColumns).
			WHERE(table.Package.ExternalCode.EQ(pg.String(externalCode))).
			QueryContext(ctx, tx, &dbPkg)

		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrPackageNotFound
		}
		if err != nil {
			return fmt.Errorf("can't get package: %w", err)
		}

		pkg, err := ToAppPackage(&dbPkg)
		if err != nil {
			return fmt.Errorf("can't convert package: %w", err)
		}

		pkg.ApplyExtraction(extraction, now)

		updated, err := ToDBPackage(pkg)
		if err != nil {
			return fmt.Errorf("can't convert merged package: %w", err)
		}

		columnList := table.Package.AllColumns.Except(table.Package.ID, table.Package.CreatedAt)
		result, err := table.Package.UPDATE(columnList).
			MODEL(updated).
			WHERE(table.Package.ID.EQ(pg.Int32(dbPkg.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update package: %w", err)
		}

		if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
			return fmt.Errorf("can't update package: %w", err)
		}

		merged = pkg

		return nil
	})
	if err != nil {
		if errors.Is(err, platform.ErrPackageNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("can't merge extraction: %w", err)
	}

	return merged, nil
}

// ReleaseLease clears the scrape lease of the package identified by
// externalCode, making it eligible again without waiting for the lease to
// expire.
func (p Postgres) ReleaseLease(ctx context.Context, externalCode string) error {
	_, err := table.Package.UPDATE().
		SET(table.Package.ScrapeLeaseUntil.SET(pg.TimestampzExp(pg.NULL))).
		WHERE(table.Package.ExternalCode.EQ(pg.String(externalCode))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't release lease: %w", err)
	}

	return nil
}

// Coverage returns aggregate catalog completeness over eligible packages.
func (p Postgres) Coverage(ctx context.Context) (models.Coverage, error) {
	eligible := table.Package.SourceURL.IS_NOT_NULL()
	coverage := models.Coverage{}

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		return countPackages(egCtx, p.db, eligible, &coverage.Total)
	})
	errGroup.Go(func() error {
		return countPackages(egCtx, p.db, pg.AND(eligible, table.Package.PriceUsd.IS_NOT_NULL()), &coverage.WithPrice)
	})
	errGroup.Go(func() error {
		return countPackages(egCtx, p.db, pg.AND(eligible, table.Package.Includes.IS_NOT_NULL()), &coverage.WithIncludes)
	})
	errGroup.Go(func() error {
		return countPackages(
			egCtx,
			p.db,
			pg.AND(eligible, table.Package.ScrapeStatus.EQ(pg.String(models.ScrapeStatusScraped))),
			&coverage.Scraped,
		)
	})

	if err := errGroup.Wait(); err != nil {
		return models.Coverage{}, fmt.Errorf("can't get catalog coverage: %w", err)
	}

	return coverage, nil
}

func countPackages(ctx context.Context, db qrm.Queryable, condition pg.BoolExpression, result *int64) error {
	var dest struct {
		Count int64
	}

	err := table.Package.SELECT(pg.COUNT(table.Package.ID).AS("count")).
		WHERE(condition).
		QueryContext(ctx, db, &dest)
	if err != nil {
		return fmt.Errorf("can't count packages: %w", err)
	}

	*result = dest.Count

	return nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
