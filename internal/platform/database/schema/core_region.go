package schema

// CoreRegionTable represents the 'core.region' table
type CoreRegionTable struct {
	Table    string
	ID       string
	Name     string
	ParentID string
}

// CoreRegion is the schema definition for core.region
var CoreRegion = CoreRegionTable{
	Table:    "core.region",
	ID:       "id",
	Name:     "name",
	ParentID: "parentid",
}
