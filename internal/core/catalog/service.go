package catalog

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return service.repo.ListCategories(ctx, ListLimit)
}

func (service *Service) ListAffiliations(ctx context.Context) ([]Affiliation, error) {
	return service.repo.ListAffiliations(ctx, ListLimit)
}

func (service *Service) ListRegions(ctx context.Context) ([]Region, error) {
	return service.repo.ListTopLevelRegions(ctx, ListLimit)
}
