package reconcile

import "fmt"

// Selection is a bulk checked-state policy applied before a
// non-interactive merge.
type Selection string

const (
	// SelectMatched checks every entry present in both versions. This
	// is the reconciler's own default, restated for explicitness.
	SelectMatched Selection = "matched"
	// SelectGreen checks only identically-placed entries.
	SelectGreen Selection = "green"
	// SelectYellow checks only moved/resized/renamed entries.
	SelectYellow Selection = "yellow"
	// SelectAllLinked checks every matched entry and then follows the
	// linkage relation one hop from each, pulling in aliased views that
	// share a start address with a matched entry.
	SelectAllLinked Selection = "all-linked"
	// SelectNone unchecks everything.
	SelectNone Selection = "none"
)

// ParseSelection validates a policy name from a flag or config file.
func ParseSelection(s string) (Selection, error) {
	switch Selection(s) {
	case SelectMatched, SelectGreen, SelectYellow, SelectAllLinked, SelectNone:
		return Selection(s), nil
	}
	return "", fmt.Errorf("unknown selection policy %q (want matched, green, yellow, all-linked or none)", s)
}

// Select applies a bulk policy to the whole table, replacing the checked
// state of every entry. Except under all-linked, one-sided entries are
// never checked by any policy; they stay merge-exempt unless toggled
// individually.
func (t *Table) Select(policy Selection) {
	for _, e := range t.entries {
		switch policy {
		case SelectMatched, SelectAllLinked:
			e.Checked = e.Matched()
		case SelectGreen:
			e.Checked = e.Category == Green
		case SelectYellow:
			e.Checked = e.Category == Yellow
		case SelectNone:
			e.Checked = false
		}
	}

	if policy == SelectAllLinked {
		// One propagation hop from every matched entry, the same
		// single-pass linkage a manual toggle applies.
		for _, title := range t.order {
			if t.entries[title].Matched() {
				t.Propagate(title, true)
			}
		}
	}
}
