package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmerge/mapmerge/internal/definition"
)

func TestPropagate_SharedAAddress(t *testing.T) {
	// Two differently-typed views of one memory cell in version A.
	tbl := Reconcile(
		[]definition.Descriptor{
			desc("cell u8", 0x100, 1),
			desc("cell u16", 0x100, 2),
			desc("unrelated", 0x400, 2),
		},
		nil,
	)

	tbl.Propagate("cell u8", true)
	assert.True(t, tbl.Get("cell u8").Checked)
	assert.True(t, tbl.Get("cell u16").Checked)
	assert.False(t, tbl.Get("unrelated").Checked)

	tbl.Propagate("cell u16", false)
	assert.False(t, tbl.Get("cell u8").Checked)
	assert.False(t, tbl.Get("cell u16").Checked)
}

func TestPropagate_SharedBAddress(t *testing.T) {
	tbl := Reconcile(
		nil,
		[]definition.Descriptor{
			desc("view 1", 0x200, 4),
			desc("view 2", 0x200, 8),
		},
	)

	tbl.Propagate("view 1", true)
	assert.True(t, tbl.Get("view 2").Checked)
}

func TestPropagate_OneHopOnly(t *testing.T) {
	// C shares an A address with D; D shares a B address with E.
	// Toggling C must update D but not reach E: propagation is a single
	// pass from the pivot, not a transitive closure.
	tbl := Reconcile(
		[]definition.Descriptor{
			desc("C", 0x100, 2),
			desc("D", 0x100, 4),
		},
		[]definition.Descriptor{
			desc("D", 0x500, 4),
			desc("E", 0x500, 8),
		},
	)
	require.True(t, tbl.Get("D").Checked, "D matched across sides")
	tbl.Select(SelectNone)

	tbl.Propagate("C", true)
	assert.True(t, tbl.Get("C").Checked)
	assert.True(t, tbl.Get("D").Checked)
	assert.False(t, tbl.Get("E").Checked)
}

func TestPropagate_UnknownPivotIsNoop(t *testing.T) {
	tbl := Reconcile([]definition.Descriptor{desc("X", 0x100, 4)}, nil)
	tbl.Propagate("missing", true)
	assert.False(t, tbl.Get("X").Checked)
}
