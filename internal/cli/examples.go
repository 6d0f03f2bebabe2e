package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/oye-labs/oye/internal/registry"
)

// printExamples appends the "Available Examples" section to help output.
func printExamples(w io.Writer, cat *registry.Catalog) {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true)
	name := r.NewStyle().Foreground(lipgloss.Color("6"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, heading.Render("Available Examples:"))
	fmt.Fprintln(w)
	if cat.Len() == 0 {
		fmt.Fprintln(w, "  No examples found.")
		fmt.Fprintln(w)
		return
	}
	for _, ex := range cat.All() {
		fmt.Fprintf(w, "  %s - %s\n", name.Render(ex.Name), ex.Summary())
	}
	fmt.Fprintln(w)
}

// dumpCatalog writes the merged catalog as indented JSON.
func dumpCatalog(w io.Writer, cat *registry.Catalog) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
