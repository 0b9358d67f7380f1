package repositories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ps-vitor/editais-sys/backend/internal/domain"
)

func sampleListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:           101,
			Title:        "[DEMO RASPAGEM AUTOMÁTICA] Apoio a Saúde e Associações",
			Organization: "Fundação X",
			Category:     "saude",
			Deadline:     "30 Mai 2026",
			Amount:       "R$ 150.000",
			Description:  "Edital recém-publicado identificado pelo robô rastreador <beta> & cia.",
			Link:         "https://fundobrasil.org.br/editais-abertos/?a=1&b=2",
		},
		{ID: 200, Title: "Sem Título", Organization: "Fundo Brasil", Category: "pesquisa", Deadline: "Não informado", Amount: "A definir", Description: "Edital capturado via automação"},
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editais_raspados.json")
	repo := NewJSONFileRepository(path)
	want := sampleListings()

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveWritesUnescapedIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editais_raspados.json")
	require.NoError(t, NewJSONFileRepository(path).Save(context.Background(), sampleListings()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	require.True(t, strings.HasPrefix(text, "[\n    {\n        \"id\": 101,"))
	require.Contains(t, text, "AUTOMÁTICA")
	require.Contains(t, text, "Saúde")
	require.Contains(t, text, "Não informado")
	require.Contains(t, text, "<beta> & cia.")
	require.Contains(t, text, "?a=1&b=2")
	require.NotContains(t, text, `\u00`)
	require.NotContains(t, text, `\u003c`)
	require.NotContains(t, text, `\u0026`)

	var fields []map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	keys := make([]string, 0, len(fields[0]))
	for k := range fields[0] {
		keys = append(keys, k)
	}
	require.ElementsMatch(t, []string{"id", "title", "organization", "category", "deadline", "amount", "saved", "description", "link"}, keys)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editais_raspados.json")
	repo := NewJSONFileRepository(path)

	require.NoError(t, repo.Save(context.Background(), sampleListings()))
	second := []domain.Listing{{ID: 999, Title: "Edital Demonstração Offline (Erro Rede)"}}
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saida", "web", "editais.json")
	require.NoError(t, NewJSONFileRepository(path).Save(context.Background(), sampleListings()))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSaveUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	// the destination is an existing directory, so it cannot be opened as a file
	err := NewJSONFileRepository(dir).Save(context.Background(), sampleListings())
	require.Error(t, err)
}

func TestFindAllMissingFile(t *testing.T) {
	_, err := NewJSONFileRepository(filepath.Join(t.TempDir(), "nada.json")).FindAll(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}
