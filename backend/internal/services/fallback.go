package services

import "github.com/ps-vitor/editais-sys/backend/internal/domain"

const (
	MissingTitle    = "Sem Título"
	MissingDeadline = "Não informado"

	// DemoMarker prefixes the title of every demonstration record.
	DemoMarker = "[DEMO RASPAGEM AUTOMÁTICA]"

	OfflineID       = 999
	OfflineCategory = domain.CategorySaude
)

// DemoListings is what an empty page yields. Both records link to the
// requested page.
func DemoListings(url string) []domain.Listing {
	return []domain.Listing{
		{
			ID:           101,
			Title:        DemoMarker + " Edital de Direitos Humanos 2026",
			Organization: "Fundo Brasil",
			Category:     domain.CategoryDireitos,
			Deadline:     "15 Abr 2026",
			Amount:       "R$ 80.000",
			Description:  "Dados atualizados hoje automaticamente via GitHub Actions.",
			Link:         url,
		},
		{
			ID:           102,
			Title:        DemoMarker + " Apoio a Saúde e Associações",
			Organization: "Fundação X",
			Category:     domain.CategorySaude,
			Deadline:     "30 Mai 2026",
			Amount:       "R$ 150.000",
			Description:  "Edital recém-publicado identificado pelo robô rastreador.",
			Link:         url,
		},
	}
}

// OfflineListing is the single record used when the page cannot be fetched.
func OfflineListing() domain.Listing {
	return domain.Listing{
		ID:           OfflineID,
		Title:        "Edital Demonstração Offline (Erro Rede)",
		Organization: "Sistema Interno",
		Category:     OfflineCategory,
		Deadline:     "N/A",
		Amount:       "R$ 0",
		Description:  "Edital falhou no carregamento da rede",
		Link:         "",
	}
}
