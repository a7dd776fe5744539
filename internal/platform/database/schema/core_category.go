package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	DisplayOrder string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:        "core.category",
	ID:           "id",
	Name:         "name",
	Slug:         "slug",
	DisplayOrder: "displayorder",
}

// CoreVendorCategoryTable represents the 'core.vendorcategory' join table
type CoreVendorCategoryTable struct {
	Table      string
	VendorID   string
	CategoryID string
	IsPrimary  string
}

// CoreVendorCategory is the schema definition for core.vendorcategory
var CoreVendorCategory = CoreVendorCategoryTable{
	Table:      "core.vendorcategory",
	VendorID:   "vendorid",
	CategoryID: "categoryid",
	IsPrimary:  "isprimary",
}
