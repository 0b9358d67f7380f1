// ./backend/api/models/listing.go

package models

import (
	"github.com/ps-vitor/editais-sys/backend/internal/domain"
	"github.com/ps-vitor/editais-sys/backend/internal/services/listing"
)

// ListingsResponse is the envelope returned by the listing and scrape
// endpoints. Total and Saved feed the dashboard counters.
type ListingsResponse struct {
	Total int              `json:"total"`
	Saved int              `json:"saved"`
	Items []domain.Listing `json:"items"`
}

func NewListingsResponse(items []domain.Listing) ListingsResponse {
	if items == nil {
		items = []domain.Listing{}
	}
	return ListingsResponse{
		Total: len(items),
		Saved: listing.CountSaved(items),
		Items: items,
	}
}
