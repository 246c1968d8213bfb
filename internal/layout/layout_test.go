package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	tests := []struct {
		rangeLen uint32
		area     int
		want     int
	}{
		{rangeLen: 100, area: 100, want: 1},  // sqrt(1)-0.5 rounds to 1
		{rangeLen: 4, area: 64, want: 4},     // sqrt(16)-0.5 rounds to 4
		{rangeLen: 16, area: 4, want: 1},     // would be 0, clamped to 1
		{rangeLen: 1, area: 100, want: 10},   // sqrt(100)-0.5 rounds to 10
		{rangeLen: 256, area: 4096, want: 4}, // sqrt(16)-0.5
		{rangeLen: 0, area: 4096, want: 1},   // empty range guard
		{rangeLen: 524288, area: 262144, want: 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Scale(tc.rangeLen, tc.area),
			"Scale(%d, %d)", tc.rangeLen, tc.area)
	}
}

func TestBytesPerRow(t *testing.T) {
	assert.Equal(t, 16, BytesPerRow(64, 4))
	assert.Equal(t, 1, BytesPerRow(2, 4), "never below one block per row")
	assert.Equal(t, 21, BytesPerRow(64, 3), "integer division")
}

func TestRenderedTotalBytes(t *testing.T) {
	assert.Equal(t, uint32(256), RenderedTotalBytes(256, 64, 64), "range fits")
	assert.Equal(t, uint32(4096), RenderedTotalBytes(100000, 64, 64), "surface-limited")
}

func TestView_Clamping(t *testing.T) {
	v := NewView(5, 0x90000)
	assert.Equal(t, uint32(0), v.Start(), "aligned down")
	assert.Equal(t, uint32(AddressSpace), v.End(), "clamped to address space")

	v = NewView(0x1008, 0x2004)
	assert.Equal(t, uint32(0x1000), v.Start())
	assert.Equal(t, uint32(0x2000), v.End())

	// Moving the start past the end clamps the moving bound.
	v.SetStart(0x3000)
	assert.Equal(t, v.End()-WindowAlign, v.Start())
	assert.Less(t, v.Start(), v.End())

	// Moving the end below the start does the same.
	v = NewView(0x4000, 0x5000)
	v.SetEnd(0x4000)
	assert.Equal(t, v.Start()+WindowAlign, v.End())
	assert.Less(t, v.Start(), v.End())
}

func TestView_Contains(t *testing.T) {
	v := NewView(0x100, 0x200)
	assert.True(t, v.Contains(0x100))
	assert.True(t, v.Contains(0x1FF))
	assert.False(t, v.Contains(0x200))
	assert.False(t, v.Contains(0xFF))
}

func TestGrid_AddressToBlock(t *testing.T) {
	// 64x64 surface over 256 bytes: scale 4, 16 bytes per row.
	g := NewGrid(64, 64, NewView(0x1000, 0x1100))
	require.Equal(t, 4, g.BlockPx)
	require.Equal(t, 16, g.RowBytes)
	require.Equal(t, uint32(256), g.Total)

	row, col, ok := g.AddressToBlock(0x1000)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col, ok = g.AddressToBlock(0x1011)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	_, _, ok = g.AddressToBlock(0x0FFF)
	assert.False(t, ok, "before the window")
	_, _, ok = g.AddressToBlock(0x1100)
	assert.False(t, ok, "past the rendered total")
}

func TestGrid_BlockToAddress(t *testing.T) {
	g := NewGrid(64, 64, NewView(0x1000, 0x1100))

	addr, ok := g.BlockToAddress(0, 0)
	require.True(t, ok)
	assert.Equal(t, uint32(0x1000), addr)

	// Any pixel inside a block resolves to the same byte.
	addr, ok = g.BlockToAddress(7, 5)
	require.True(t, ok)
	assert.Equal(t, uint32(0x1011), addr)

	_, ok = g.BlockToAddress(64, 0)
	assert.False(t, ok, "off-surface x")
	_, ok = g.BlockToAddress(0, 64)
	assert.False(t, ok, "off-surface y")
	_, ok = g.BlockToAddress(-1, 0)
	assert.False(t, ok)
}

func TestGrid_SurfaceLimitedWindow(t *testing.T) {
	// 16 bytes per row, 16 rows: only the first 256 of 4096 bytes fit.
	g := Grid{
		Width: 16, Height: 16,
		View:     NewView(0, 0x1000),
		BlockPx:  1,
		RowBytes: 16,
		Total:    RenderedTotalBytes(0x1000, 16, 16),
	}
	require.Equal(t, uint32(256), g.Total)

	_, _, ok := g.AddressToBlock(0x100)
	assert.False(t, ok, "address past the surface capacity")
	_, ok = g.BlockToAddress(15, 15)
	assert.True(t, ok)
}

func TestGrid_RoundTrip(t *testing.T) {
	grids := []Grid{
		NewGrid(64, 64, NewView(0, 0x1000)),      // scale 1
		NewGrid(64, 64, NewView(0x1000, 0x1100)), // scale 4
		NewGrid(100, 60, NewView(0x2000, 0x2800)),
	}
	for _, g := range grids {
		// Every rendered address maps to a block whose pixels map back.
		for rel := uint32(0); rel < g.Total; rel++ {
			addr := g.View.Start() + rel
			row, col, ok := g.AddressToBlock(addr)
			require.True(t, ok, "addr %05X", addr)

			back, ok := g.BlockToAddress(col*g.BlockPx, row*g.BlockPx)
			require.True(t, ok, "block (%d,%d)", row, col)
			require.Equal(t, addr, back)
		}

		// Every surface pixel that resolves to an address resolves back
		// to its own block.
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				addr, ok := g.BlockToAddress(x, y)
				if !ok {
					continue
				}
				row, col, ok := g.AddressToBlock(addr)
				require.True(t, ok)
				require.Equal(t, y/g.BlockPx, row)
				require.Equal(t, x/g.BlockPx, col)
			}
		}
	}
}
