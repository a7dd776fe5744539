package schema

// CoreAffiliationTable represents the 'core.affiliation' table
type CoreAffiliationTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// CoreAffiliation is the schema definition for core.affiliation
var CoreAffiliation = CoreAffiliationTable{
	Table: "core.affiliation",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}

// CoreVendorAffiliationTable represents the 'core.vendoraffiliation' join table
type CoreVendorAffiliationTable struct {
	Table         string
	VendorID      string
	AffiliationID string
}

// CoreVendorAffiliation is the schema definition for core.vendoraffiliation
var CoreVendorAffiliation = CoreVendorAffiliationTable{
	Table:         "core.vendoraffiliation",
	VendorID:      "vendorid",
	AffiliationID: "affiliationid",
}
