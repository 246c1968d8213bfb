// Package reconcile combines the symbol descriptor lists of two firmware
// versions into a single keyed table of reconciled entries.
//
// Each entry records where a symbol lives in version A, in version B, or
// in both, and is classified Green (identical placement), Yellow (present
// in both but moved, resized, or renamed) or Red (present in one version
// only). The table is the unit of work for everything downstream: the
// display view, linkage toggling and the binary merge all operate on it.
package reconcile

import (
	"sort"

	"github.com/mapmerge/mapmerge/internal/definition"
)

// Category classifies a reconciled entry.
type Category int

const (
	// Red marks a symbol present in exactly one firmware version.
	Red Category = iota
	// Yellow marks a symbol present in both versions with differing
	// placement, or matched by placement under different names.
	Yellow
	// Green marks a symbol present in both versions at an identical
	// address and size.
	Green
)

func (c Category) String() string {
	switch c {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	}
	return "unknown"
}

// Side holds a symbol's placement in one firmware version. A nil *Side
// on an Entry means the symbol is absent from that version, so an entry
// with both sides populated is known matched by construction.
type Side struct {
	Address     uint32
	Size        uint32
	Description string
}

// Entry is the reconciled record for one canonical symbol title.
type Entry struct {
	Title string

	// A and B are the symbol's placements in the two versions. At least
	// one is always non-nil.
	A *Side
	B *Side

	Category Category

	// Checked selects the entry for merging. Entries matched across
	// both versions start checked; one-sided entries start unchecked
	// and are never merged unless explicitly selected.
	Checked bool

	// SecondName holds the B-side title when the entry was matched by
	// address and size under a different name.
	SecondName string

	// DisplayRow is the entry's position in the current display view,
	// or -1 when filtered out. Transient; rebuilt by Rows.
	DisplayRow int
}

// Matched reports whether the symbol is present in both versions.
func (e *Entry) Matched() bool {
	return e.A != nil && e.B != nil
}

// categorize derives the entry's category from its sides.
func categorize(e *Entry) Category {
	switch {
	case !e.Matched():
		return Red
	case e.A.Address == e.B.Address && e.A.Size == e.B.Size:
		return Green
	default:
		return Yellow
	}
}

// Table is the reconciled entry table, keyed by canonical title and
// iterable in insertion order (version A declaration order, then
// B-only entries in their declaration order).
type Table struct {
	entries map[string]*Entry
	order   []string
}

// Get returns the entry for a canonical title, or nil.
func (t *Table) Get(title string) *Entry {
	return t.entries[title]
}

// Len returns the number of reconciled entries.
func (t *Table) Len() int {
	return len(t.order)
}

// Entries returns all entries in insertion order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.order))
	for _, title := range t.order {
		out = append(out, t.entries[title])
	}
	return out
}

// Counts holds the per-category entry totals.
type Counts struct {
	Green  int
	Yellow int
	Red    int
}

// Total returns the table size. Always equals Green+Yellow+Red.
func (c Counts) Total() int {
	return c.Green + c.Yellow + c.Red
}

// Counts tallies entries per category.
func (t *Table) Counts() Counts {
	var c Counts
	for _, e := range t.entries {
		switch e.Category {
		case Green:
			c.Green++
		case Yellow:
			c.Yellow++
		case Red:
			c.Red++
		}
	}
	return c
}

// Rows rebuilds the display view: entries passing the include filter
// (nil includes everything), sorted by address (A side when present,
// else B) with title as tie-break. DisplayRow is assigned on every
// entry, -1 for those filtered out.
func (t *Table) Rows(include func(*Entry) bool) []*Entry {
	visible := make([]*Entry, 0, len(t.order))
	for _, title := range t.order {
		e := t.entries[title]
		e.DisplayRow = -1
		if include == nil || include(e) {
			visible = append(visible, e)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		ai, aj := sortAddress(visible[i]), sortAddress(visible[j])
		if ai != aj {
			return ai < aj
		}
		return visible[i].Title < visible[j].Title
	})
	for i, e := range visible {
		e.DisplayRow = i
	}
	return visible
}

func sortAddress(e *Entry) uint32 {
	if e.A != nil {
		return e.A.Address
	}
	return e.B.Address
}

// Reconcile builds a fresh table from the descriptor lists of the two
// firmware versions. It is a pure function of its inputs: reloading
// either side replaces the table wholesale, and in-flight checked state
// is intentionally not carried over.
func Reconcile(listA, listB []definition.Descriptor) *Table {
	t := &Table{entries: make(map[string]*Entry, len(listA)+len(listB))}

	for _, d := range listA {
		e, ok := t.entries[d.Title]
		if !ok {
			e = &Entry{Title: d.Title, DisplayRow: -1}
			t.entries[d.Title] = e
			t.order = append(t.order, d.Title)
		}
		// Duplicate titles within one list collapse; the last
		// declaration wins, matching the keyed-table semantics.
		e.A = &Side{Address: d.Start, Size: d.Size, Description: d.Description}
		e.Category = categorize(e)
	}

	for _, d := range listB {
		side := &Side{Address: d.Start, Size: d.Size, Description: d.Description}

		// A title match counts only against an A-seeded entry. An entry
		// created by an earlier B descriptor of the same title is still
		// one-sided and must not become checked.
		if e, ok := t.entries[d.Title]; ok && e.A != nil {
			e.B = side
			e.Checked = true
			e.Category = categorize(e)
			continue
		}

		// No title match: look for an A descriptor at the identical
		// address and size under a different name. First match in
		// declaration order wins; further candidates are not
		// disambiguated (known limitation of the alias search).
		if alias := findAlias(listA, d); alias != nil {
			e := t.entries[alias.Title]
			e.B = side
			e.Checked = true
			e.SecondName = d.Title
			e.Category = Yellow
			continue
		}

		e, ok := t.entries[d.Title]
		if !ok {
			e = &Entry{Title: d.Title, DisplayRow: -1}
			t.entries[d.Title] = e
			t.order = append(t.order, d.Title)
		}
		// Duplicate B titles collapse like A's: the last declaration's
		// placement wins and the entry stays one-sided and unchecked.
		e.B = side
		e.Category = categorize(e)
	}

	return t
}

func findAlias(listA []definition.Descriptor, d definition.Descriptor) *definition.Descriptor {
	for i := range listA {
		a := &listA[i]
		if a.Title != d.Title && a.Start == d.Start && a.Size == d.Size {
			return a
		}
	}
	return nil
}
