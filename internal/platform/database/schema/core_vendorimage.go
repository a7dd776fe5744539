package schema

// CoreVendorImageTable represents the 'core.vendorimage' table
type CoreVendorImageTable struct {
	Table        string
	ID           string
	VendorID     string
	ImageURL     string
	Caption      string
	IsCover      string
	DisplayOrder string
}

// CoreVendorImage is the schema definition for core.vendorimage
var CoreVendorImage = CoreVendorImageTable{
	Table:        "core.vendorimage",
	ID:           "id",
	VendorID:     "vendorid",
	ImageURL:     "imageurl",
	Caption:      "caption",
	IsCover:      "iscover",
	DisplayOrder: "displayorder",
}

// CoreVendorSocialLinkTable represents the 'core.vendorsociallink' table
type CoreVendorSocialLinkTable struct {
	Table    string
	ID       string
	VendorID string
	Platform string
	URL      string
}

// CoreVendorSocialLink is the schema definition for core.vendorsociallink
var CoreVendorSocialLink = CoreVendorSocialLinkTable{
	Table:    "core.vendorsociallink",
	ID:       "id",
	VendorID: "vendorid",
	Platform: "platform",
	URL:      "url",
}
