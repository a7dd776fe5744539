package catalog

import (
	"cmp"
	"context"
	"slices"

	"github.com/taibuivan/vowdirectory/internal/core/fixture"
)

// MemoryRepository serves reference lists from a loaded [fixture.Dataset].
type MemoryRepository struct {
	dataset *fixture.Dataset
}

func NewMemoryRepository(dataset *fixture.Dataset) *MemoryRepository {
	return &MemoryRepository{dataset: dataset}
}

func (repository *MemoryRepository) ListCategories(_ context.Context, limit int) ([]Category, error) {
	categories := make([]Category, 0, len(repository.dataset.Categories))
	for _, c := range repository.dataset.Categories {
		categories = append(categories, Category{ID: c.ID, Name: c.Name, Slug: c.Slug, DisplayOrder: c.DisplayOrder})
	}

	slices.SortStableFunc(categories, func(a, b Category) int {
		return cmp.Or(cmp.Compare(a.DisplayOrder, b.DisplayOrder), cmp.Compare(a.Name, b.Name))
	})
	return truncate(categories, limit), nil
}

func (repository *MemoryRepository) ListAffiliations(_ context.Context, limit int) ([]Affiliation, error) {
	affiliations := make([]Affiliation, 0, len(repository.dataset.Affiliations))
	for _, a := range repository.dataset.Affiliations {
		affiliations = append(affiliations, Affiliation{ID: a.ID, Name: a.Name, Slug: a.Slug})
	}

	slices.SortStableFunc(affiliations, func(a, b Affiliation) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return truncate(affiliations, limit), nil
}

func (repository *MemoryRepository) ListTopLevelRegions(_ context.Context, limit int) ([]Region, error) {
	regions := make([]Region, 0, len(repository.dataset.Regions))
	for _, r := range repository.dataset.Regions {
		if r.ParentID == nil {
			regions = append(regions, Region{ID: r.ID, Name: r.Name})
		}
	}

	slices.SortStableFunc(regions, func(a, b Region) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return truncate(regions, limit), nil
}

func truncate[T any](rows []T, limit int) []T {
	if limit >= 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
