package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("EDITAIS_OUTPUT", "")
	t.Setenv("EDITAIS_SITE", "")
	t.Setenv("EDITAIS_PORT", "")
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigWithoutFilesUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "editais_raspados.json", cfg.App.OutputFile)
	require.Equal(t, 8080, cfg.App.Port)
	require.Equal(t, time.Second, cfg.App.Latency())

	site, err := cfg.Site("")
	require.NoError(t, err)
	require.Equal(t, "https://fundobrasil.org.br/editais-abertos/", site.URL)
	require.Contains(t, site.UserAgent, "Mozilla/5.0")
	require.Equal(t, 10*time.Second, site.TimeoutDuration())
	require.Equal(t, ".edital-card", site.Selectors.Card)
	require.Equal(t, 200, site.Defaults.FirstID)
}

func TestLoadConfigMergesSiteDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "app.yaml", `
app:
  port: 9090
  simulated_latency: 0s
`)
	writeFile(t, dir, "scraping.yaml", `
default_site: outro
sites:
  outro:
    url: https://example.org/chamadas
    timeout: 3s
    selectors:
      card: article.chamada
    defaults:
      organization: Instituto Exemplo
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.App.Port)
	require.Equal(t, "editais_raspados.json", cfg.App.OutputFile)
	require.Equal(t, time.Duration(0), cfg.App.Latency())

	site, err := cfg.Site("")
	require.NoError(t, err)
	require.Equal(t, "https://example.org/chamadas", site.URL)
	require.Equal(t, 3*time.Second, site.TimeoutDuration())
	require.Equal(t, "article.chamada", site.Selectors.Card)
	require.Equal(t, ".titulo-edital", site.Selectors.Title)
	require.Equal(t, "a", site.Selectors.Link)
	require.Equal(t, "Instituto Exemplo", site.Defaults.Organization)
	require.Equal(t, "pesquisa", site.Defaults.Category)
	require.NotEmpty(t, site.UserAgent)

	// the built-in site stays available next to the configured one
	_, err = cfg.Site(DefaultSiteName)
	require.NoError(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "scraping.yaml", "sites: [this is: not valid")

	_, err := LoadConfig(dir)
	require.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EDITAIS_OUTPUT", "saida/editais.json")
	t.Setenv("EDITAIS_PORT", "7070")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "saida/editais.json", cfg.App.OutputFile)
	require.Equal(t, 7070, cfg.App.Port)
}

func TestSiteUnknown(t *testing.T) {
	cfg := Default()
	_, err := cfg.Site("inexistente")
	require.ErrorIs(t, err, ErrUnknownSite)
}

func TestParseDurationFallback(t *testing.T) {
	require.Equal(t, DefaultTimeout, SiteConfig{Timeout: "soon"}.TimeoutDuration())
	require.Equal(t, DefaultTimeout, SiteConfig{Timeout: "-1s"}.TimeoutDuration())
	require.Equal(t, 2*time.Second, SiteConfig{Timeout: "2s"}.TimeoutDuration())
}
