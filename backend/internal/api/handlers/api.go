package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ps-vitor/editais-sys/backend/internal/api/models"
	"github.com/ps-vitor/editais-sys/backend/internal/services/listing"
	"github.com/ps-vitor/editais-sys/backend/pkg/logger"
)

type APIHandler struct {
	listingService *listing.ListingService
	outputFile     string
	log            *logger.Logger
}

// NewAPIHandler serves the listings persisted at outputFile.
func NewAPIHandler(listingService *listing.ListingService, outputFile string, log *logger.Logger) *APIHandler {
	return &APIHandler{listingService: listingService, outputFile: outputFile, log: log}
}

func (h *APIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/editais", h.handleListings).Methods(http.MethodGet)
	r.HandleFunc("/api/editais/{id}", h.handleListing).Methods(http.MethodGet)
	// the dashboard fetches the raw file by name
	r.HandleFunc("/"+filepath.Base(h.outputFile), h.handleRawFile).Methods(http.MethodGet)
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("API funcionando"))
}

// handleListings returns the persisted listings, filtered like the dashboard.
//
// Method: GET
// Path:   /api/editais?q=...&category=...&saved=true
func (h *APIHandler) handleListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	saved, _ := strconv.ParseBool(query.Get("saved"))

	listings, err := h.listingService.Search(r.Context(), listing.Filter{
		Query:     query.Get("q"),
		Category:  query.Get("category"),
		SavedOnly: saved,
	})
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}

	writeJSON(w, r, h.log, models.NewListingsResponse(listings), http.StatusOK)
}

// handleListing returns a single listing by id.
//
// Method: GET
// Path:   /api/editais/{id}
func (h *APIHandler) handleListing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	l, err := h.listingService.FindByID(r.Context(), id)
	if errors.Is(err, listing.ErrListingNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}

	writeJSON(w, r, h.log, l, http.StatusOK)
}

func (h *APIHandler) handleRawFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	http.ServeFile(w, r, h.outputFile)
}

func (h *APIHandler) writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, os.ErrNotExist) {
		http.Error(w, "no listings scraped yet", http.StatusNotFound)
		return
	}
	h.log.ErrorContext(r.Context(), "erro ao carregar editais", "err", err)
	http.Error(w, "failed to load listings", http.StatusInternalServerError)
}
