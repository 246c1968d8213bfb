package reconcile

// Propagate sets the checked state of the pivot entry and of every entry
// directly linked to it. Two entries are linked when they share a
// concrete A-side start address or a concrete B-side start address:
// anything claiming to start at the same byte offset in either firmware
// is treated as an aliased view of one physical location and toggled
// together.
//
// Propagation is a single pass from the pivot, not a transitive closure.
// In a chain C~D (shared A address) and D~E (shared B address), toggling
// C updates D but not E. Longer alias chains in real definitions are
// rare enough that this one-hop behavior has never been revisited.
func (t *Table) Propagate(pivotTitle string, checked bool) {
	pivot, ok := t.entries[pivotTitle]
	if !ok {
		return
	}
	pivot.Checked = checked

	for _, e := range t.entries {
		if e == pivot {
			continue
		}
		if pivot.A != nil && e.A != nil && e.A.Address == pivot.A.Address {
			e.Checked = checked
			continue
		}
		if pivot.B != nil && e.B != nil && e.B.Address == pivot.B.Address {
			e.Checked = checked
		}
	}
}
