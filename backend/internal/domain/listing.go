// backend/internal/domain/listing.go
package domain

// Listing is one edital (call for proposals) as consumed by the dashboard.
// JSON keys are the dashboard contract and must not change.
type Listing struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Category     string `json:"category"`
	Deadline     string `json:"deadline"`
	Amount       string `json:"amount"`
	Saved        bool   `json:"saved"`
	Description  string `json:"description"`
	Link         string `json:"link"`
}

// Categories used by the dashboard filters.
const (
	CategorySaude    = "saude"
	CategoryDireitos = "direitos"
	CategoryPesquisa = "pesquisa"
)
