package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mapmerge/mapmerge/internal/cli/helpers"
	"github.com/mapmerge/mapmerge/internal/layout"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := "mapmerge browse"
	if m.filter != "" {
		header += "  [" + m.filter + "]"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(helpers.CountsLine(m.recon.Counts()))
	b.WriteString("\n\n")

	if m.showGrid {
		g := layout.NewGrid(48, 24, m.gridView())
		b.WriteString(hintStyle.Render("window " + helpers.FormatAddr(g.View.Start()) + "-" + helpers.FormatAddr(g.View.End())))
		b.WriteString("\n")
		b.WriteString(helpers.RenderGridANSI(g, m.recon))
	} else {
		b.WriteString(m.tbl.View())
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("space toggle · f filter · v grid · e export · q quit"))
	b.WriteString("\n")
	return b.String()
}

// gridView selects the byte window the grid pane shows: a fixed-size
// window starting at the selected entry's address, or the start of the
// image when nothing is selected.
func (m *model) gridView() layout.View {
	const window = 48 * 24 // one byte per terminal cell
	start := uint32(0)
	if e := m.selected(); e != nil {
		switch {
		case e.A != nil:
			start = e.A.Address
		case e.B != nil:
			start = e.B.Address
		}
	}
	if start > layout.AddressSpace-window {
		start = layout.AddressSpace - window
	}
	return layout.NewView(start, start+window)
}
