package scraping

import (
	"context"
	"fmt"

	"github.com/ps-vitor/editais-sys/backend/internal/domain"
	"github.com/ps-vitor/editais-sys/backend/internal/repositories"
)

type Harvester interface {
	Harvest(ctx context.Context) []domain.Listing
}

type ScraperService struct {
	harvester Harvester
	repo      repositories.ListingRepository
}

func NewScraperService(harvester Harvester, repo repositories.ListingRepository) *ScraperService {
	return &ScraperService{harvester: harvester, repo: repo}
}

// ScrapeAndStore harvests once and persists the result. Only persistence
// errors are returned.
func (s *ScraperService) ScrapeAndStore(ctx context.Context) ([]domain.Listing, error) {
	listings := s.harvester.Harvest(ctx)
	if err := s.repo.Save(ctx, listings); err != nil {
		return nil, fmt.Errorf("persist %d listings: %w", len(listings), err)
	}
	return listings, nil
}
