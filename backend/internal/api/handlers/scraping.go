// backend/internal/api/handlers/scraping.go

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ps-vitor/editais-sys/backend/internal/api/models"
	"github.com/ps-vitor/editais-sys/backend/internal/services/scraping"
	"github.com/ps-vitor/editais-sys/backend/pkg/logger"
)

type ScrapingHandler struct {
	scraperService *scraping.ScraperService
	log            *logger.Logger
}

func NewScrapingHandler(svc *scraping.ScraperService, log *logger.Logger) *ScrapingHandler {
	return &ScrapingHandler{scraperService: svc, log: log}
}

func (h *ScrapingHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/scrape", h.HandleScrape).Methods(http.MethodGet, http.MethodPost)
}

func (h *ScrapingHandler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listings, err := h.scraperService.ScrapeAndStore(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "falha ao salvar editais", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, h.log, models.NewListingsResponse(listings), http.StatusOK)
}
