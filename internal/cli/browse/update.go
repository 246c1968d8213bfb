package browse

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	coremerge "github.com/mapmerge/mapmerge/internal/merge"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		h := msg.Height - 8
		if h < 5 {
			h = 5
		}
		m.tbl.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Toggle):
			if e := m.selected(); e != nil {
				m.recon.Propagate(e.Title, !e.Checked)
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, keys.Filter):
			m.filter = nextFilter(m.filter)
			m.refresh()
			return m, nil

		case key.Matches(msg, keys.Grid):
			m.showGrid = !m.showGrid
			return m, nil

		case key.Matches(msg, keys.Export):
			m.status = m.export()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func nextFilter(cur string) string {
	for i, f := range filterCycle {
		if f == cur {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return ""
}

// export writes the merged image and returns a status line for the
// footer. Missing binaries refuse the export rather than producing
// partial output.
func (m *model) export() string {
	merged, report, err := coremerge.Export(m.imgA, m.imgB, m.recon)
	if err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	if err := os.WriteFile(m.out, merged, 0o644); err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	return fmt.Sprintf("wrote %s (%d copied, %d skipped)", m.out, report.Copied, report.Skipped)
}
