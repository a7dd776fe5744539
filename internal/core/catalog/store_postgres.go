package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vowdirectory/internal/platform/database/schema"
	"github.com/taibuivan/vowdirectory/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(ctx context.Context, limit int) ([]Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1;
	`,
		schema.CoreCategory.ID,
		schema.CoreCategory.Name,
		schema.CoreCategory.Slug,
		schema.CoreCategory.DisplayOrder,
		schema.CoreCategory.Table,
		schema.CoreCategory.DisplayOrder,
		schema.CoreCategory.Name,
	)

	rows, err := repository.db.Query(ctx, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "Category", "list_categories")
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Category, error) {
		var c Category
		err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder)
		return c, err
	})
	return categories, dberr.Wrap(err, "Category", "scan_category")
}

func (repository *PostgresRepository) ListAffiliations(ctx context.Context, limit int) ([]Affiliation, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1;
	`,
		schema.CoreAffiliation.ID,
		schema.CoreAffiliation.Name,
		schema.CoreAffiliation.Slug,
		schema.CoreAffiliation.Table,
		schema.CoreAffiliation.Name,
	)

	rows, err := repository.db.Query(ctx, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "Affiliation", "list_affiliations")
	}

	affiliations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Affiliation, error) {
		var a Affiliation
		err := row.Scan(&a.ID, &a.Name, &a.Slug)
		return a, err
	})
	return affiliations, dberr.Wrap(err, "Affiliation", "scan_affiliation")
}

func (repository *PostgresRepository) ListTopLevelRegions(ctx context.Context, limit int) ([]Region, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s ASC
		LIMIT $1;
	`,
		schema.CoreRegion.ID,
		schema.CoreRegion.Name,
		schema.CoreRegion.ParentID,
		schema.CoreRegion.Table,
		schema.CoreRegion.ParentID,
		schema.CoreRegion.Name,
	)

	rows, err := repository.db.Query(ctx, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "Region", "list_regions")
	}

	regions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Region, error) {
		var r Region
		err := row.Scan(&r.ID, &r.Name, &r.ParentID)
		return r, err
	})
	return regions, dberr.Wrap(err, "Region", "scan_region")
}
