package helpers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mapmerge/mapmerge/internal/reconcile"
)

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// FormatAddr renders an address in the tool's display convention:
// 5 hex digits, uppercase, zero-padded.
func FormatAddr(a uint32) string {
	return fmt.Sprintf("%05X", a)
}

// FormatSide renders one side's placement, or a dash when absent.
func FormatSide(s *reconcile.Side) string {
	if s == nil {
		return dimStyle.Render("          -")
	}
	return fmt.Sprintf("%s +%6d", FormatAddr(s.Address), s.Size)
}

// CategoryStyle returns the lipgloss style for a category.
func CategoryStyle(c reconcile.Category) lipgloss.Style {
	switch c {
	case reconcile.Green:
		return greenStyle
	case reconcile.Yellow:
		return yellowStyle
	default:
		return redStyle
	}
}

// EntryLine renders one table row for the compare listing.
func EntryLine(e *reconcile.Entry) string {
	check := " "
	if e.Checked {
		check = "x"
	}
	title := e.Title
	if e.SecondName != "" {
		title += " / " + e.SecondName
	}
	line := fmt.Sprintf("[%s] %-6s  A %s  B %s  %s",
		check, e.Category, FormatSide(e.A), FormatSide(e.B), title)
	return CategoryStyle(e.Category).Render(line)
}

// CountsLine renders the per-category totals footer.
func CountsLine(c reconcile.Counts) string {
	parts := []string{
		greenStyle.Render(fmt.Sprintf("green %d", c.Green)),
		yellowStyle.Render(fmt.Sprintf("yellow %d", c.Yellow)),
		redStyle.Render(fmt.Sprintf("red %d", c.Red)),
		fmt.Sprintf("total %d", c.Total()),
	}
	return strings.Join(parts, "  ")
}

// CategoryFilter builds a Rows filter from a --category flag value.
// Empty means no filter. Unknown names reject everything rather than
// silently showing all.
func CategoryFilter(name string) (func(*reconcile.Entry) bool, error) {
	switch name {
	case "":
		return nil, nil
	case "green":
		return func(e *reconcile.Entry) bool { return e.Category == reconcile.Green }, nil
	case "yellow":
		return func(e *reconcile.Entry) bool { return e.Category == reconcile.Yellow }, nil
	case "red":
		return func(e *reconcile.Entry) bool { return e.Category == reconcile.Red }, nil
	}
	return nil, fmt.Errorf("unknown category %q (want green, yellow or red)", name)
}
