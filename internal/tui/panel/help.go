package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// helpMarkdown builds the help overlay text from the key map.
func helpMarkdown(keys KeyMap) string {
	var b strings.Builder
	b.WriteString("# Brightness panel\n\n")
	b.WriteString("Each row is one display reported by the host. Expand a row to see how it is controlled.\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\nBrightness changes are sent to the host; the row updates once the host confirms.\n")
	return b.String()
}

// renderHelp renders md for the given width. It falls back to the raw
// markdown when no renderer can be built.
func renderHelp(md string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(styles.TokyoNightStyle)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
