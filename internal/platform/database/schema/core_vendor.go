package schema

// CoreVendorTable represents the 'core.vendor' table
type CoreVendorTable struct {
	Table         string
	ID            string
	BusinessName  string
	Slug          string
	LogoURL       string
	Description   string
	LocationText  string
	City          string
	Address       string
	WebsiteURL    string
	ContactEmail  string
	ContactPhone  string
	AverageRating string
	ReviewCount   string
	IsActive      string
	IsFeatured    string
	RegionID      string
	SaveCount     string
	ViewCount     string
	CreatedAt     string
	UpdatedAt     string
}

// CoreVendor is the schema definition for core.vendor
var CoreVendor = CoreVendorTable{
	Table:         "core.vendor",
	ID:            "id",
	BusinessName:  "businessname",
	Slug:          "slug",
	LogoURL:       "logourl",
	Description:   "description",
	LocationText:  "locationtext",
	City:          "city",
	Address:       "address",
	WebsiteURL:    "websiteurl",
	ContactEmail:  "contactemail",
	ContactPhone:  "contactphone",
	AverageRating: "averagerating",
	ReviewCount:   "reviewcount",
	IsActive:      "isactive",
	IsFeatured:    "isfeatured",
	RegionID:      "regionid",
	SaveCount:     "savecount",
	ViewCount:     "viewcount",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// ListColumns are the columns projected into a listing item, in scan order.
func (t CoreVendorTable) ListColumns() []string {
	return []string{t.ID, t.BusinessName, t.Slug, t.LogoURL, t.AverageRating, t.ReviewCount, t.LocationText, t.City, t.IsActive, t.IsFeatured, t.UpdatedAt}
}
