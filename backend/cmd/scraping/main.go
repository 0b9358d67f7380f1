// backend/cmd/scraping/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ps-vitor/editais-sys/backend/internal/config"
	"github.com/ps-vitor/editais-sys/backend/internal/report"
	"github.com/ps-vitor/editais-sys/backend/internal/repositories"
	"github.com/ps-vitor/editais-sys/backend/internal/services"
	"github.com/ps-vitor/editais-sys/backend/internal/services/scraping"
	"github.com/ps-vitor/editais-sys/backend/pkg/logger"
)

type options struct {
	configDir string
	site      string
	output    string
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.New("scraping").Debug("nenhum arquivo .env encontrado, usando variáveis do sistema")
	}

	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "scraping",
		Short:        "Raspa os editais abertos e salva o JSON consumido pelo painel.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, out)
		},
	}

	cmd.Flags().StringVar(&opts.configDir, "config-dir", config.Dir(), "Directory holding app.yaml and scraping.yaml.")
	cmd.Flags().StringVar(&opts.site, "site", "", "Site to scrape (defaults to scraping.default_site).")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output JSON file (defaults to app.output_file).")

	return cmd
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetDebug(cfg.App.Debug)
	log := logger.NewWithWriter(out, "scraping")

	site, err := cfg.Site(opts.site)
	if err != nil {
		return err
	}

	outputFile := cfg.App.OutputFile
	if opts.output != "" {
		outputFile = opts.output
	}

	log.InfoContext(ctx, "--- Rastreador de Editais ABEMDIS (Módulo Scraper) ---")
	log.InfoContext(ctx, "simulando coleta de editais", "url", site.URL)
	if err := sleep(ctx, cfg.App.Latency()); err != nil {
		return err
	}

	svc := scraping.NewScraperService(
		services.NewHarvester(site, log),
		repositories.NewJSONFileRepository(outputFile),
	)

	t1 := time.Now()
	listings, err := svc.ScrapeAndStore(ctx)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "dados salvos com sucesso", "file", outputFile, "seconds", time.Since(t1).Seconds())

	report.Print(out, listings)
	log.InfoContext(ctx, "processo concluído")
	return nil
}

// sleep simulates network latency for the demo.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
