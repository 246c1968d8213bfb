package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmerge/mapmerge/internal/definition"
)

func desc(title string, start, size uint32) definition.Descriptor {
	return definition.Descriptor{
		Title: title,
		Start: start,
		End:   start + size,
		Size:  size,
	}
}

func TestReconcile_IdenticalPlacementIsGreen(t *testing.T) {
	tbl := Reconcile(
		[]definition.Descriptor{desc("X", 0x100, 4)},
		[]definition.Descriptor{desc("X", 0x100, 4)},
	)
	require.Equal(t, 1, tbl.Len())

	e := tbl.Get("X")
	require.NotNil(t, e)
	assert.Equal(t, Green, e.Category)
	assert.True(t, e.Checked)
	assert.True(t, e.Matched())
}

func TestReconcile_MovedSymbolIsYellow(t *testing.T) {
	tbl := Reconcile(
		[]definition.Descriptor{desc("X", 0x100, 4)},
		[]definition.Descriptor{desc("X", 0x200, 4)},
	)
	e := tbl.Get("X")
	require.NotNil(t, e)
	assert.Equal(t, Yellow, e.Category)
	assert.True(t, e.Checked)
	assert.Equal(t, uint32(0x100), e.A.Address)
	assert.Equal(t, uint32(0x200), e.B.Address)
}

func TestReconcile_RenamedSymbolMatchesByAddress(t *testing.T) {
	tbl := Reconcile(
		[]definition.Descriptor{desc("X", 0x100, 2)},
		[]definition.Descriptor{desc("Y", 0x100, 2)},
	)
	// One merged entry under the A-side title, carrying the B name.
	require.Equal(t, 1, tbl.Len())
	e := tbl.Get("X")
	require.NotNil(t, e)
	assert.Equal(t, Yellow, e.Category)
	assert.True(t, e.Checked)
	assert.Equal(t, "Y", e.SecondName)
	assert.Nil(t, tbl.Get("Y"))
}

func TestReconcile_OneSidedIsRedAndUnchecked(t *testing.T) {
	tbl := Reconcile(
		[]definition.Descriptor{desc("Z", 0x300, 8)},
		nil,
	)
	e := tbl.Get("Z")
	require.NotNil(t, e)
	assert.Equal(t, Red, e.Category)
	assert.False(t, e.Checked)
	assert.Nil(t, e.B)

	tbl = Reconcile(nil, []definition.Descriptor{desc("W", 0x400, 8)})
	e = tbl.Get("W")
	require.NotNil(t, e)
	assert.Equal(t, Red, e.Category)
	assert.False(t, e.Checked)
	assert.Nil(t, e.A)
}

func TestReconcile_AliasFirstMatchWins(t *testing.T) {
	// Two A descriptors at the same placement; the alias search picks
	// the first in declaration order and does not disambiguate further.
	tbl := Reconcile(
		[]definition.Descriptor{
			desc("First", 0x100, 2),
			desc("Second", 0x100, 2),
		},
		[]definition.Descriptor{desc("Other", 0x100, 2)},
	)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Other", tbl.Get("First").SecondName)
	assert.Empty(t, tbl.Get("Second").SecondName)
	assert.NotNil(t, tbl.Get("First").B)
	assert.Nil(t, tbl.Get("Second").B)
}

func TestReconcile_TitleMatchBeatsAliasMatch(t *testing.T) {
	tbl := Reconcile(
		[]definition.Descriptor{
			desc("Alias", 0x100, 4),
			desc("X", 0x500, 4),
		},
		[]definition.Descriptor{desc("X", 0x100, 4)},
	)
	// B's "X" matches A's "X" by title even though "Alias" matches by
	// placement.
	e := tbl.Get("X")
	require.NotNil(t, e)
	assert.Equal(t, Yellow, e.Category)
	assert.Empty(t, e.SecondName)
	assert.Nil(t, tbl.Get("Alias").B)
}

func TestReconcile_DuplicateBTitleStaysUnchecked(t *testing.T) {
	// Two B declarations of the same title and no A counterpart: the
	// entry collapses to the last placement but remains one-sided, so
	// it must keep the "do not touch" default.
	tbl := Reconcile(
		nil,
		[]definition.Descriptor{
			desc("X", 0x100, 4),
			desc("X", 0x200, 4),
		},
	)
	require.Equal(t, 1, tbl.Len())

	e := tbl.Get("X")
	require.NotNil(t, e)
	assert.Equal(t, Red, e.Category)
	assert.Nil(t, e.A)
	assert.False(t, e.Checked, "one-sided entries must default to unchecked")
	assert.Equal(t, uint32(0x200), e.B.Address, "last declaration wins")
}

func TestReconcile_DuplicateBTitleCanStillAliasMatch(t *testing.T) {
	// The second B occurrence carries a placement that matches an A
	// descriptor under a different name: the alias rule applies to it
	// even though its title already exists as a B-only entry.
	tbl := Reconcile(
		[]definition.Descriptor{desc("A-name", 0x300, 4)},
		[]definition.Descriptor{
			desc("X", 0x100, 4),
			desc("X", 0x300, 4),
		},
	)
	alias := tbl.Get("A-name")
	require.NotNil(t, alias)
	assert.Equal(t, Yellow, alias.Category)
	assert.True(t, alias.Checked)
	assert.Equal(t, "X", alias.SecondName)

	only := tbl.Get("X")
	require.NotNil(t, only)
	assert.Equal(t, Red, only.Category)
	assert.False(t, only.Checked)
	assert.Equal(t, uint32(0x100), only.B.Address)
}

func TestCounts_TotalAlwaysMatchesTableSize(t *testing.T) {
	tbl := Reconcile(
		[]definition.Descriptor{
			desc("G", 0x100, 4),
			desc("Y", 0x200, 4),
			desc("RA", 0x300, 4),
		},
		[]definition.Descriptor{
			desc("G", 0x100, 4),
			desc("Y", 0x280, 4),
			desc("RB", 0x400, 4),
		},
	)
	c := tbl.Counts()
	assert.Equal(t, 1, c.Green)
	assert.Equal(t, 1, c.Yellow)
	assert.Equal(t, 2, c.Red)
	assert.Equal(t, tbl.Len(), c.Total())
}

func TestRows_FilterAndDisplayRow(t *testing.T) {
	tbl := Reconcile(
		[]definition.Descriptor{
			desc("B-sym", 0x200, 4),
			desc("A-sym", 0x100, 4),
		},
		[]definition.Descriptor{desc("A-sym", 0x100, 4)},
	)

	rows := tbl.Rows(nil)
	require.Len(t, rows, 2)
	// Sorted by address, not declaration order.
	assert.Equal(t, "A-sym", rows[0].Title)
	assert.Equal(t, 0, rows[0].DisplayRow)
	assert.Equal(t, 1, rows[1].DisplayRow)

	onlyRed := tbl.Rows(func(e *Entry) bool { return e.Category == Red })
	require.Len(t, onlyRed, 1)
	assert.Equal(t, "B-sym", onlyRed[0].Title)
	assert.Equal(t, 0, onlyRed[0].DisplayRow)
	// Filtered-out entries are marked, not just omitted.
	assert.Equal(t, -1, tbl.Get("A-sym").DisplayRow)
}

func TestSelect_Policies(t *testing.T) {
	build := func() *Table {
		return Reconcile(
			[]definition.Descriptor{
				desc("G", 0x100, 4),
				desc("Y", 0x200, 4),
				desc("R", 0x300, 4),
			},
			[]definition.Descriptor{
				desc("G", 0x100, 4),
				desc("Y", 0x240, 4),
			},
		)
	}

	tbl := build()
	tbl.Select(SelectNone)
	for _, e := range tbl.Entries() {
		assert.False(t, e.Checked)
	}

	tbl = build()
	tbl.Select(SelectGreen)
	assert.True(t, tbl.Get("G").Checked)
	assert.False(t, tbl.Get("Y").Checked)
	assert.False(t, tbl.Get("R").Checked)

	tbl = build()
	tbl.Select(SelectYellow)
	assert.False(t, tbl.Get("G").Checked)
	assert.True(t, tbl.Get("Y").Checked)

	tbl = build()
	tbl.Select(SelectMatched)
	assert.True(t, tbl.Get("G").Checked)
	assert.True(t, tbl.Get("Y").Checked)
	assert.False(t, tbl.Get("R").Checked)
}

func TestSelect_AllLinkedFollowsLinkageOneHop(t *testing.T) {
	// "cell u16" is matched; "cell u8" is A-only but shares its A start
	// address, so all-linked pulls it in. "far" shares nothing and
	// stays unchecked.
	tbl := Reconcile(
		[]definition.Descriptor{
			desc("cell u16", 0x100, 2),
			desc("cell u8", 0x100, 1),
			desc("far", 0x400, 2),
		},
		[]definition.Descriptor{desc("cell u16", 0x100, 2)},
	)

	tbl.Select(SelectAllLinked)
	assert.True(t, tbl.Get("cell u16").Checked)
	assert.True(t, tbl.Get("cell u8").Checked, "aliased view linked to a matched entry")
	assert.False(t, tbl.Get("far").Checked)
}

func TestParseSelection(t *testing.T) {
	for _, name := range []string{"matched", "green", "yellow", "all-linked", "none"} {
		p, err := ParseSelection(name)
		require.NoError(t, err)
		assert.Equal(t, Selection(name), p)
	}
	_, err := ParseSelection("everything")
	assert.Error(t, err)
}
