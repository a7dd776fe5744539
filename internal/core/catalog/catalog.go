/*
Package catalog serves the reference data that listing filters are built from.

Categories, affiliations and regions change rarely and are rendered on every
search page, so they are read through an optional Redis cache. The vendor
package depends on these types for vendor detail relations.
*/
package catalog

// ListLimit caps every reference list.
const ListLimit = 200

// Category is a vendor service category (e.g. photography).
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	DisplayOrder int    `json:"display_order"`
}

// Affiliation is a professional body or label a vendor belongs to.
type Affiliation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Region is a geographic area. Top-level regions have no parent.
type Region struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}
