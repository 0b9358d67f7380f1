// internal/services/scraper_service.go
package services

import (
	"context"

	"github.com/ps-vitor/editais-sys/backend/internal/config"
	"github.com/ps-vitor/editais-sys/backend/internal/domain"
	"github.com/ps-vitor/editais-sys/backend/internal/scraping/collectors/editais"
	"github.com/ps-vitor/editais-sys/backend/pkg/logger"
)

// Collector performs one collection attempt against a listing page.
type Collector interface {
	Collect(ctx context.Context) domain.Outcome
}

// Harvester turns a collection attempt into listing records. It never fails:
// empty pages and network errors are replaced by fallback records.
type Harvester struct {
	collector Collector
	defaults  config.RecordDefaults
	log       *logger.Logger
}

func NewHarvester(site config.SiteConfig, log *logger.Logger) *Harvester {
	return NewHarvesterWithCollector(editais.NewCollector(site, log), site.Defaults, log)
}

// NewHarvesterWithCollector builds a harvester around a custom collector (tests).
func NewHarvesterWithCollector(collector Collector, defaults config.RecordDefaults, log *logger.Logger) *Harvester {
	return &Harvester{
		collector: collector,
		defaults:  defaults,
		log:       log,
	}
}

func (h *Harvester) Harvest(ctx context.Context) []domain.Listing {
	outcome := h.collector.Collect(ctx)

	switch outcome.Kind {
	case domain.OutcomeTransportFailure:
		h.log.ErrorContext(ctx, "erro ao acessar a página", "url", outcome.URL, "err", outcome.Err)
		h.log.WarnContext(ctx, "fallback: utilizando edital de demonstração offline")
	case domain.OutcomeEmptyMatch:
		h.log.WarnContext(ctx, "nenhum card de edital encontrado usando os seletores atuais", "url", outcome.URL)
		h.log.InfoContext(ctx, "gerando dados de demonstração")
	case domain.OutcomeMatched:
		h.log.InfoContext(ctx, "cards de edital encontrados", "url", outcome.URL, "count", len(outcome.Cards))
	}

	return Resolve(outcome, h.defaults)
}

// Resolve maps an outcome to the records to persist. The result is never empty.
func Resolve(outcome domain.Outcome, defaults config.RecordDefaults) []domain.Listing {
	switch outcome.Kind {
	case domain.OutcomeMatched:
		if len(outcome.Cards) == 0 {
			return DemoListings(outcome.URL)
		}
		listings := make([]domain.Listing, 0, len(outcome.Cards))
		for i, card := range outcome.Cards {
			listings = append(listings, listingFromCard(defaults.FirstID+i, card, defaults))
		}
		return listings
	case domain.OutcomeEmptyMatch:
		return DemoListings(outcome.URL)
	default:
		return []domain.Listing{OfflineListing()}
	}
}

func listingFromCard(id int, card domain.Card, defaults config.RecordDefaults) domain.Listing {
	listing := domain.Listing{
		ID:           id,
		Title:        MissingTitle,
		Organization: defaults.Organization,
		Category:     defaults.Category,
		Deadline:     MissingDeadline,
		Amount:       defaults.Amount,
		Description:  defaults.Description,
	}
	if card.HasTitle {
		listing.Title = card.Title
	}
	if card.HasDeadline {
		listing.Deadline = card.Deadline
	}
	if card.HasLink {
		listing.Link = card.Link
	}
	return listing
}
