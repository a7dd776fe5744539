// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package fixture loads directory datasets from YAML.

A dataset is the complete relational content of the directory (regions,
categories, affiliations and vendors with their images and social links)
expressed with slugs instead of join rows. It backs two things:

  - The memory storage driver, which serves the API straight from a dataset.
  - The seed command, which writes a dataset into Postgres.

Validation mirrors the database constraints so that a dataset accepted here
is also accepted by the migrations in data/migrations.
*/
package fixture

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/vowdirectory/internal/platform/validate"
	"github.com/taibuivan/vowdirectory/pkg/slug"
)

// Dataset is the root document of a fixture file.
type Dataset struct {
	Regions      []Region      `yaml:"regions"`
	Categories   []Category    `yaml:"categories"`
	Affiliations []Affiliation `yaml:"affiliations"`
	Vendors      []Vendor      `yaml:"vendors"`
}

type Region struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	ParentID *int64 `yaml:"parent_id"`
}

type Category struct {
	ID           int64  `yaml:"id"`
	Name         string `yaml:"name"`
	Slug         string `yaml:"slug"`
	DisplayOrder int    `yaml:"display_order"`
}

type Affiliation struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

// Vendor is a vendor row plus its relations.
//
// Categories and Affiliations hold slugs; PrimaryCategory, when set, must be
// one of Categories.
type Vendor struct {
	ID              int64        `yaml:"id"`
	BusinessName    string       `yaml:"business_name"`
	Slug            string       `yaml:"slug"`
	LogoURL         *string      `yaml:"logo_url"`
	Description     *string      `yaml:"description"`
	LocationText    *string      `yaml:"location_text"`
	City            *string      `yaml:"city"`
	Address         *string      `yaml:"address"`
	WebsiteURL      *string      `yaml:"website_url"`
	ContactEmail    *string      `yaml:"contact_email"`
	ContactPhone    *string      `yaml:"contact_phone"`
	AverageRating   *float64     `yaml:"average_rating"`
	ReviewCount     int          `yaml:"review_count"`
	IsActive        bool         `yaml:"is_active"`
	IsFeatured      bool         `yaml:"is_featured"`
	RegionID        *int64       `yaml:"region_id"`
	SaveCount       int          `yaml:"save_count"`
	ViewCount       int          `yaml:"view_count"`
	CreatedAt       time.Time    `yaml:"created_at"`
	UpdatedAt       time.Time    `yaml:"updated_at"`
	Categories      []string     `yaml:"categories"`
	PrimaryCategory string       `yaml:"primary_category"`
	Affiliations    []string     `yaml:"affiliations"`
	Images          []Image      `yaml:"images"`
	SocialLinks     []SocialLink `yaml:"social_links"`
}

type Image struct {
	ID           int64   `yaml:"id"`
	URL          string  `yaml:"url"`
	Caption      *string `yaml:"caption"`
	IsCover      bool    `yaml:"is_cover"`
	DisplayOrder *int    `yaml:"display_order"`
}

type SocialLink struct {
	ID       int64  `yaml:"id"`
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

// Load reads, normalizes and validates the dataset at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}

	dataset, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixture: %s: %w", path, err)
	}
	return dataset, nil
}

/*
Parse decodes a YAML document into a validated [Dataset].

Unknown keys are rejected so that typos in hand-written fixtures surface
immediately. Missing ids and slugs are filled in (see [Dataset.Normalize]).

Returns:
  - *Dataset: The normalized dataset
  - error: Decoding failures or a VALIDATION_ERROR listing every broken rule
*/
func Parse(data []byte) (*Dataset, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var dataset Dataset
	if err := decoder.Decode(&dataset); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	dataset.Normalize()
	if err := dataset.Validate(); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// Normalize assigns sequential ids to rows declared without one, derives
// missing slugs from names and defaults UpdatedAt to CreatedAt.
func (dataset *Dataset) Normalize() {
	var nextImageID, nextLinkID int64

	for i := range dataset.Regions {
		if dataset.Regions[i].ID == 0 {
			dataset.Regions[i].ID = int64(i + 1)
		}
	}

	for i := range dataset.Categories {
		category := &dataset.Categories[i]
		if category.ID == 0 {
			category.ID = int64(i + 1)
		}
		if category.Slug == "" {
			category.Slug = slug.From(category.Name)
		}
	}

	for i := range dataset.Affiliations {
		affiliation := &dataset.Affiliations[i]
		if affiliation.ID == 0 {
			affiliation.ID = int64(i + 1)
		}
		if affiliation.Slug == "" {
			affiliation.Slug = slug.From(affiliation.Name)
		}
	}

	for i := range dataset.Vendors {
		vendor := &dataset.Vendors[i]
		if vendor.ID == 0 {
			vendor.ID = int64(i + 1)
		}
		if vendor.Slug == "" {
			vendor.Slug = slug.From(vendor.BusinessName)
		}
		if vendor.UpdatedAt.IsZero() {
			vendor.UpdatedAt = vendor.CreatedAt
		}

		for j := range vendor.Images {
			nextImageID++
			if vendor.Images[j].ID == 0 {
				vendor.Images[j].ID = nextImageID
			}
		}
		for j := range vendor.SocialLinks {
			nextLinkID++
			if vendor.SocialLinks[j].ID == 0 {
				vendor.SocialLinks[j].ID = nextLinkID
			}
		}
	}
}

// Validate checks referential integrity and the vendor row constraints.
func (dataset *Dataset) Validate() error {
	validator := &validate.Validator{}

	regionIDs := make(map[int64]bool, len(dataset.Regions))
	for i, region := range dataset.Regions {
		field := fmt.Sprintf("regions[%d]", i)
		validator.Required(field+".name", region.Name).
			Custom(field+".id", regionIDs[region.ID], "Duplicate id")
		regionIDs[region.ID] = true
	}
	for i, region := range dataset.Regions {
		if region.ParentID != nil {
			validator.Custom(fmt.Sprintf("regions[%d].parent_id", i), !regionIDs[*region.ParentID], "Unknown region")
		}
	}

	categorySlugs := make(map[string]bool, len(dataset.Categories))
	for i, category := range dataset.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		validator.Required(field+".name", category.Name).
			Slug(field+".slug", category.Slug).
			Custom(field+".slug", categorySlugs[category.Slug], "Duplicate slug")
		categorySlugs[category.Slug] = true
	}

	affiliationSlugs := make(map[string]bool, len(dataset.Affiliations))
	for i, affiliation := range dataset.Affiliations {
		field := fmt.Sprintf("affiliations[%d]", i)
		validator.Required(field+".name", affiliation.Name).
			Slug(field+".slug", affiliation.Slug).
			Custom(field+".slug", affiliationSlugs[affiliation.Slug], "Duplicate slug")
		affiliationSlugs[affiliation.Slug] = true
	}

	vendorSlugs := make(map[string]bool, len(dataset.Vendors))
	vendorIDs := make(map[int64]bool, len(dataset.Vendors))
	for i, vendor := range dataset.Vendors {
		field := fmt.Sprintf("vendors[%d]", i)

		validator.Required(field+".business_name", vendor.BusinessName).
			MaxLen(field+".business_name", vendor.BusinessName, 200).
			Slug(field+".slug", vendor.Slug).
			Custom(field+".slug", vendorSlugs[vendor.Slug], "Duplicate slug").
			Custom(field+".id", vendorIDs[vendor.ID], "Duplicate id").
			Range(field+".review_count", vendor.ReviewCount, 0, math.MaxInt32).
			Range(field+".save_count", vendor.SaveCount, 0, math.MaxInt32).
			Range(field+".view_count", vendor.ViewCount, 0, math.MaxInt32)
		vendorSlugs[vendor.Slug] = true
		vendorIDs[vendor.ID] = true

		if vendor.AverageRating != nil {
			validator.FloatRange(field+".average_rating", *vendor.AverageRating, 0, 5).
				Custom(field+".average_rating", vendor.ReviewCount == 0, "Rating requires at least one review")
		}
		if vendor.ContactEmail != nil {
			validator.Email(field+".contact_email", *vendor.ContactEmail)
		}
		if vendor.RegionID != nil {
			validator.Custom(field+".region_id", !regionIDs[*vendor.RegionID], "Unknown region")
		}

		for _, categorySlug := range vendor.Categories {
			validator.Custom(field+".categories", !categorySlugs[categorySlug], "Unknown category "+categorySlug)
		}
		if vendor.PrimaryCategory != "" {
			validator.Custom(field+".primary_category", !slices.Contains(vendor.Categories, vendor.PrimaryCategory), "Must be one of the vendor's categories")
		}
		for _, affiliationSlug := range vendor.Affiliations {
			validator.Custom(field+".affiliations", !affiliationSlugs[affiliationSlug], "Unknown affiliation "+affiliationSlug)
		}

		covers := 0
		for j, image := range vendor.Images {
			validator.Required(fmt.Sprintf("%s.images[%d].url", field, j), image.URL)
			if image.IsCover {
				covers++
			}
		}
		validator.Custom(field+".images", covers > 1, "At most one cover image")

		for j, link := range vendor.SocialLinks {
			linkField := fmt.Sprintf("%s.social_links[%d]", field, j)
			validator.Required(linkField+".platform", link.Platform).
				Required(linkField+".url", link.URL)
		}
	}

	return validator.Err()
}
