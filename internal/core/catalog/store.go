package catalog

import "context"

// Repository defines the data access contract for reference lists.
// Implementations return at most limit rows, already in display order.
type Repository interface {
	ListCategories(ctx context.Context, limit int) ([]Category, error)
	ListAffiliations(ctx context.Context, limit int) ([]Affiliation, error)
	ListTopLevelRegions(ctx context.Context, limit int) ([]Region, error)
}
