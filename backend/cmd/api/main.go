// backend/cmd/api/main.go
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ps-vitor/editais-sys/backend/internal/api/handlers"
	"github.com/ps-vitor/editais-sys/backend/internal/config"
	"github.com/ps-vitor/editais-sys/backend/internal/repositories"
	"github.com/ps-vitor/editais-sys/backend/internal/services"
	"github.com/ps-vitor/editais-sys/backend/internal/services/listing"
	"github.com/ps-vitor/editais-sys/backend/internal/services/scraping"
	"github.com/ps-vitor/editais-sys/backend/pkg/logger"
)

func main() {
	log := logger.New("api")

	if err := godotenv.Load(); err != nil {
		log.Debug("nenhum arquivo .env encontrado, usando variáveis do sistema")
	}

	cfg, err := config.LoadConfig(config.Dir())
	if err != nil {
		log.Error("erro ao carregar configuração", "err", err)
		os.Exit(1)
	}
	logger.SetDebug(cfg.App.Debug)

	site, err := cfg.Site("")
	if err != nil {
		log.Error("site inválido", "err", err)
		os.Exit(1)
	}

	// Setup dependencies
	repo := repositories.NewJSONFileRepository(cfg.App.OutputFile)
	scraperSvc := scraping.NewScraperService(services.NewHarvester(site, log), repo)
	apiHandler := handlers.NewAPIHandler(listing.NewListingService(repo), cfg.App.OutputFile, log)
	scrapingHandler := handlers.NewScrapingHandler(scraperSvc, log)

	r := handlers.NewRouter(apiHandler, scrapingHandler)
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info("servidor rodando", "addr", addr, "file", cfg.App.OutputFile)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error("servidor encerrado", "err", err)
		os.Exit(1)
	}
}
