package handlers

import "github.com/gorilla/mux"

func NewRouter(api *APIHandler, scrape *ScrapingHandler) *mux.Router {
	r := mux.NewRouter()
	api.RegisterRoutes(r)
	scrape.RegisterRoutes(r)
	return r
}
