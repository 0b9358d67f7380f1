package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ps-vitor/editais-sys/backend/internal/domain"
)

func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// Print writes the harvest summary: a count line followed by one row per
// listing with its title and deadline.
func Print(w io.Writer, listings []domain.Listing) {
	fmt.Fprintf(w, "\nForam encontrados %d editais.\n", len(listings))

	t := NewTable(w)
	t.AppendHeader(table.Row{"ID", "Título", "Prazo", "Órgão"})
	for _, l := range listings {
		t.AppendRow(table.Row{l.ID, l.Title, l.Deadline, l.Organization})
	}
	t.Render()
}
