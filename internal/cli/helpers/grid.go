package helpers

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mapmerge/mapmerge/internal/layout"
	"github.com/mapmerge/mapmerge/internal/reconcile"
)

// RenderGridANSI draws the grid as terminal cells, one byte per cell,
// two characters wide so cells come out roughly square. The color policy
// is the same one the pixel renderer uses.
func RenderGridANSI(g layout.Grid, t *reconcile.Table) string {
	cells := g.Cells(t)

	var b strings.Builder
	for _, row := range cells {
		for _, c := range row {
			b.WriteString(cellStyle(c).Render("  "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cellStyle(c color.RGBA) lipgloss.Style {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}
