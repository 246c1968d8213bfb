package browse

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mapmerge/mapmerge/internal/cli/helpers"
	"github.com/mapmerge/mapmerge/internal/reconcile"
	"github.com/mapmerge/mapmerge/internal/rom"
)

type keyMap struct {
	Toggle key.Binding
	Filter key.Binding
	Grid   key.Binding
	Export key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
	Grid:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid view")),
	Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// filterCycle is the order the 'f' key steps through.
var filterCycle = []string{"", "green", "yellow", "red"}

type model struct {
	recon *reconcile.Table
	imgA  *rom.Image
	imgB  *rom.Image
	out   string

	tbl      table.Model
	visible  []*reconcile.Entry
	filter   string
	showGrid bool
	status   string
	width    int
	quitting bool
}

func newModel(recon *reconcile.Table, imgA, imgB *rom.Image, out string) *model {
	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: " ", Width: 3},
			{Title: "Cat", Width: 6},
			{Title: "A addr", Width: 8},
			{Title: "A size", Width: 7},
			{Title: "B addr", Width: 8},
			{Title: "B size", Width: 7},
			{Title: "Title", Width: 48},
		}),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	tbl.SetStyles(s)

	m := &model{
		recon: recon,
		imgA:  imgA,
		imgB:  imgB,
		out:   out,
		tbl:   tbl,
	}
	m.refresh()
	return m
}

// refresh rebuilds the visible rows from the reconciled table, keeping
// the cursor on the same display row when possible.
func (m *model) refresh() {
	include, _ := helpers.CategoryFilter(m.filter)
	m.visible = m.recon.Rows(include)

	rows := make([]table.Row, 0, len(m.visible))
	for _, e := range m.visible {
		rows = append(rows, entryRow(e))
	}
	cursor := m.tbl.Cursor()
	m.tbl.SetRows(rows)
	if cursor >= len(rows) && len(rows) > 0 {
		m.tbl.SetCursor(len(rows) - 1)
	}
}

func entryRow(e *reconcile.Entry) table.Row {
	check := " "
	if e.Checked {
		check = "x"
	}
	addrA, sizeA, addrB, sizeB := "-", "-", "-", "-"
	if e.A != nil {
		addrA = helpers.FormatAddr(e.A.Address)
		sizeA = itoa(e.A.Size)
	}
	if e.B != nil {
		addrB = helpers.FormatAddr(e.B.Address)
		sizeB = itoa(e.B.Size)
	}
	title := e.Title
	if e.SecondName != "" {
		title += " / " + e.SecondName
	}
	return table.Row{check, e.Category.String(), addrA, sizeA, addrB, sizeB, title}
}

func itoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// selected returns the entry under the cursor, or nil.
func (m *model) selected() *reconcile.Entry {
	c := m.tbl.Cursor()
	if c < 0 || c >= len(m.visible) {
		return nil
	}
	return m.visible[c]
}

func (m *model) Init() tea.Cmd {
	return nil
}
