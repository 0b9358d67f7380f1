package listing

import (
	"context"
	"errors"
	"strings"

	"github.com/ps-vitor/editais-sys/backend/internal/domain"
	"github.com/ps-vitor/editais-sys/backend/internal/repositories"
)

var ErrListingNotFound = errors.New("listing not found")

// Filter mirrors the dashboard controls: free-text search over title and
// organization, a category tab and the "saved" tab.
type Filter struct {
	Query     string
	Category  string
	SavedOnly bool
}

type ListingService struct {
	repo repositories.ListingRepository
}

func NewListingService(repo repositories.ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

func (s *ListingService) FindAll(ctx context.Context) ([]domain.Listing, error) {
	return s.repo.FindAll(ctx)
}

func (s *ListingService) FindByID(ctx context.Context, id int) (domain.Listing, error) {
	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.Listing{}, err
	}
	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, ErrListingNotFound
}

func (s *ListingService) Search(ctx context.Context, f Filter) ([]domain.Listing, error) {
	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := []domain.Listing{}
	for _, l := range listings {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f Filter) Matches(l domain.Listing) bool {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query != "" &&
		!strings.Contains(strings.ToLower(l.Title), query) &&
		!strings.Contains(strings.ToLower(l.Organization), query) {
		return false
	}
	if f.SavedOnly && !l.Saved {
		return false
	}
	if f.Category != "" && f.Category != "all" && l.Category != f.Category {
		return false
	}
	return true
}

// CountSaved returns how many listings are flagged as saved.
func CountSaved(listings []domain.Listing) int {
	n := 0
	for _, l := range listings {
		if l.Saved {
			n++
		}
	}
	return n
}
