package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v2"
)

var ErrUnknownSite = errors.New("unknown site")

type Config struct {
	App      AppConfig      `yaml:"app"`
	Scraping ScrapingConfig `yaml:"scraping"`
}

type AppConfig struct {
	Name             string `yaml:"name"`
	Env              string `yaml:"env"`
	Debug            bool   `yaml:"debug"`
	Port             int    `yaml:"port"`
	OutputFile       string `yaml:"output_file"`
	SimulatedLatency string `yaml:"simulated_latency"`
}

type ScrapingConfig struct {
	DefaultSite string                `yaml:"default_site"`
	Sites       map[string]SiteConfig `yaml:"sites"`
}

// SiteConfig describes one listing page: where to fetch it, how to look like
// a browser while doing so and which selectors find the cards.
type SiteConfig struct {
	URL              string            `yaml:"url"`
	UserAgent        string            `yaml:"user_agent"`
	Headers          map[string]string `yaml:"headers"`
	Timeout          string            `yaml:"timeout"`
	CloudflareBypass bool              `yaml:"cloudflare_bypass"`
	Selectors        SelectorRules     `yaml:"selectors"`
	Defaults         RecordDefaults    `yaml:"defaults"`
}

type SelectorRules struct {
	Card     string `yaml:"card"`
	Title    string `yaml:"title"`
	Deadline string `yaml:"deadline"`
	Link     string `yaml:"link"`
}

// RecordDefaults are the values every card-derived record gets for the
// fields the page does not expose.
type RecordDefaults struct {
	FirstID      int    `yaml:"first_id"`
	Organization string `yaml:"organization"`
	Category     string `yaml:"category"`
	Amount       string `yaml:"amount"`
	Description  string `yaml:"description"`
}

const (
	DefaultSiteName = "fundobrasil"
	DefaultTimeout  = 10 * time.Second
	DefaultLatency  = time.Second
)

func DefaultSite() SiteConfig {
	return SiteConfig{
		URL:       "https://fundobrasil.org.br/editais-abertos/",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Headers: map[string]string{
			"Accept-Language": "pt-BR,pt;q=0.9,en;q=0.8",
		},
		Timeout: "10s",
		Selectors: SelectorRules{
			Card:     ".edital-card",
			Title:    ".titulo-edital",
			Deadline: ".prazo-inscricao",
			Link:     "a",
		},
		Defaults: RecordDefaults{
			FirstID:      200,
			Organization: "Fundo Brasil",
			Category:     "pesquisa",
			Amount:       "A definir",
			Description:  "Edital capturado via automação",
		},
	}
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:             "rastreador-editais",
			Env:              "development",
			Port:             8080,
			OutputFile:       "editais_raspados.json",
			SimulatedLatency: "1s",
		},
		Scraping: ScrapingConfig{
			DefaultSite: DefaultSiteName,
			Sites: map[string]SiteConfig{
				DefaultSiteName: DefaultSite(),
			},
		},
	}
}

// Dir is the configuration directory, EDITAIS_CONFIG_DIR or "configs".
func Dir() string {
	return getEnv("EDITAIS_CONFIG_DIR", "configs")
}

// LoadConfig reads <dir>/app.yaml and <dir>/scraping.yaml. Missing files are
// not an error; anything left unset is filled from Default and then
// environment overrides are applied.
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{}

	// Carrega arquivo YAML base
	if err := readYAML(filepath.Join(dir, "app.yaml"), cfg); err != nil {
		return nil, err
	}

	// Carrega configurações específicas de scraping
	if err := readYAML(filepath.Join(dir, "scraping.yaml"), &cfg.Scraping); err != nil {
		return nil, err
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	return cfg, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) error {
	if err := mergo.Merge(cfg, *Default()); err != nil {
		return fmt.Errorf("merge defaults: %w", err)
	}
	for name, site := range cfg.Scraping.Sites {
		if err := mergo.Merge(&site, DefaultSite()); err != nil {
			return fmt.Errorf("merge defaults for site %s: %w", name, err)
		}
		cfg.Scraping.Sites[name] = site
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.App.OutputFile = getEnv("EDITAIS_OUTPUT", cfg.App.OutputFile)
	cfg.Scraping.DefaultSite = getEnv("EDITAIS_SITE", cfg.Scraping.DefaultSite)
	if port, err := strconv.Atoi(os.Getenv("EDITAIS_PORT")); err == nil && port > 0 {
		cfg.App.Port = port
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Site returns the named site, or the default site when name is empty.
func (c *Config) Site(name string) (SiteConfig, error) {
	if name == "" {
		name = c.Scraping.DefaultSite
	}
	site, ok := c.Scraping.Sites[name]
	if !ok {
		return SiteConfig{}, fmt.Errorf("%w: %q", ErrUnknownSite, name)
	}
	return site, nil
}

func (s SiteConfig) TimeoutDuration() time.Duration {
	return parseDuration(s.Timeout, DefaultTimeout)
}

func (a AppConfig) Latency() time.Duration {
	return parseDuration(a.SimulatedLatency, DefaultLatency)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
