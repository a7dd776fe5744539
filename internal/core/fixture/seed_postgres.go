// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fixture

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/vowdirectory/internal/platform/database/schema"
)

// Beginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// seededTables are cleared before a seed, children first.
var seededTables = []string{
	schema.CoreVendorSocialLink.Table,
	schema.CoreVendorImage.Table,
	schema.CoreVendorAffiliation.Table,
	schema.CoreVendorCategory.Table,
	schema.CoreVendor.Table,
	schema.CoreAffiliation.Table,
	schema.CoreCategory.Table,
	schema.CoreRegion.Table,
}

// sequencedTables own a BIGSERIAL id whose sequence must follow explicit inserts.
var sequencedTables = []string{
	schema.CoreRegion.Table,
	schema.CoreCategory.Table,
	schema.CoreAffiliation.Table,
	schema.CoreVendor.Table,
	schema.CoreVendorImage.Table,
	schema.CoreVendorSocialLink.Table,
}

/*
Seed replaces the directory content with dataset inside one transaction.

Description: Existing rows are truncated, every row is queued on a single
[pgx.Batch] with its explicit id, and each id sequence is moved past the
highest inserted id so later inserts do not collide.

Parameters:
  - ctx: context.Context
  - db: Beginner (usually the shared *pgxpool.Pool)
  - dataset: *Dataset (already normalized and validated)

Returns:
  - error: Any failure; the transaction is rolled back
*/
func Seed(ctx context.Context, db Beginner, dataset *Dataset) error {
	transaction, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: seed begin: %w", err)
	}
	defer transaction.Rollback(ctx)

	truncate := fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(seededTables, ", "))
	if _, err := transaction.Exec(ctx, truncate); err != nil {
		return fmt.Errorf("postgres: seed truncate: %w", err)
	}

	batch := &pgx.Batch{}
	queueReference(batch, dataset)
	if err := queueVendors(batch, dataset); err != nil {
		return err
	}

	for _, table := range sequencedTables {
		batch.Queue(fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM %s), 1))",
			table, table,
		))
	}

	if err := transaction.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("postgres: seed insert: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: seed commit: %w", err)
	}
	return nil
}

func queueReference(batch *pgx.Batch, dataset *Dataset) {
	region := schema.CoreRegion
	insertRegion := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, NULL)",
		region.Table, region.ID, region.Name, region.ParentID)
	linkRegion := fmt.Sprintf("UPDATE %s SET %s = $2 WHERE %s = $1",
		region.Table, region.ParentID, region.ID)

	// Parents may be declared after children, so links are set in a second pass.
	for _, r := range dataset.Regions {
		batch.Queue(insertRegion, r.ID, r.Name)
	}
	for _, r := range dataset.Regions {
		if r.ParentID != nil {
			batch.Queue(linkRegion, r.ID, *r.ParentID)
		}
	}

	category := schema.CoreCategory
	insertCategory := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)",
		category.Table, category.ID, category.Name, category.Slug, category.DisplayOrder)
	for _, c := range dataset.Categories {
		batch.Queue(insertCategory, c.ID, c.Name, c.Slug, c.DisplayOrder)
	}

	affiliation := schema.CoreAffiliation
	insertAffiliation := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)",
		affiliation.Table, affiliation.ID, affiliation.Name, affiliation.Slug)
	for _, a := range dataset.Affiliations {
		batch.Queue(insertAffiliation, a.ID, a.Name, a.Slug)
	}
}

func queueVendors(batch *pgx.Batch, dataset *Dataset) error {
	categoryIDs := make(map[string]int64, len(dataset.Categories))
	for _, c := range dataset.Categories {
		categoryIDs[c.Slug] = c.ID
	}
	affiliationIDs := make(map[string]int64, len(dataset.Affiliations))
	for _, a := range dataset.Affiliations {
		affiliationIDs[a.Slug] = a.ID
	}

	v := schema.CoreVendor
	insertVendor := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		v.Table, v.ID, v.BusinessName, v.Slug, v.LogoURL, v.Description, v.LocationText, v.City, v.Address,
		v.WebsiteURL, v.ContactEmail, v.ContactPhone, v.AverageRating, v.ReviewCount, v.IsActive, v.IsFeatured,
		v.RegionID, v.SaveCount, v.ViewCount, v.CreatedAt, v.UpdatedAt,
	)

	vc := schema.CoreVendorCategory
	insertCategory := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)",
		vc.Table, vc.VendorID, vc.CategoryID, vc.IsPrimary)

	va := schema.CoreVendorAffiliation
	insertAffiliation := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		va.Table, va.VendorID, va.AffiliationID)

	img := schema.CoreVendorImage
	insertImage := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)",
		img.Table, img.ID, img.VendorID, img.ImageURL, img.Caption, img.IsCover, img.DisplayOrder)

	link := schema.CoreVendorSocialLink
	insertLink := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)",
		link.Table, link.ID, link.VendorID, link.Platform, link.URL)

	for _, vendor := range dataset.Vendors {
		if vendor.CreatedAt.IsZero() {
			return fmt.Errorf("fixture: vendor %q: created_at is required for seeding", vendor.Slug)
		}

		batch.Queue(insertVendor,
			vendor.ID, vendor.BusinessName, vendor.Slug, vendor.LogoURL, vendor.Description,
			vendor.LocationText, vendor.City, vendor.Address, vendor.WebsiteURL, vendor.ContactEmail,
			vendor.ContactPhone, vendor.AverageRating, vendor.ReviewCount, vendor.IsActive, vendor.IsFeatured,
			vendor.RegionID, vendor.SaveCount, vendor.ViewCount, vendor.CreatedAt, vendor.UpdatedAt,
		)

		for _, categorySlug := range vendor.Categories {
			batch.Queue(insertCategory, vendor.ID, categoryIDs[categorySlug], categorySlug == vendor.PrimaryCategory)
		}
		for _, affiliationSlug := range vendor.Affiliations {
			batch.Queue(insertAffiliation, vendor.ID, affiliationIDs[affiliationSlug])
		}
		for _, image := range vendor.Images {
			batch.Queue(insertImage, image.ID, vendor.ID, image.URL, image.Caption, image.IsCover, image.DisplayOrder)
		}
		for _, socialLink := range vendor.SocialLinks {
			batch.Queue(insertLink, socialLink.ID, vendor.ID, socialLink.Platform, socialLink.URL)
		}
	}
	return nil
}
