// Package layout maps byte addresses to grid blocks and back.
//
// A selected window of the firmware address space is rendered as a grid
// of square colored blocks, one block per byte, on a surface of given
// pixel dimensions. The same arithmetic runs in both directions: drawing
// turns addresses into blocks, hit-testing turns a clicked pixel back
// into an address. A Grid freezes the derived block scale and row width
// for one (surface, view) pair so the two directions invert each other
// exactly.
package layout

import "math"

// AddressSpace is the exclusive upper bound of the 512 KiB firmware
// address space.
const AddressSpace = 0x80000

// WindowAlign is the alignment of view window bounds.
const WindowAlign = 16

// View is the selected byte window of the address space. Both bounds
// are multiples of 16 and Start < End always holds; moving one bound
// across the other clamps the moving bound.
type View struct {
	start uint32
	end   uint32
}

// FullView spans the whole address space.
func FullView() View {
	return View{start: 0, end: AddressSpace}
}

// NewView builds a view from arbitrary bounds, aligning them down to 16
// and clamping into the address space.
func NewView(start, end uint32) View {
	v := FullView()
	v.SetStart(start)
	v.SetEnd(end)
	return v
}

// SetStart moves the lower bound. The value is aligned down to 16 and
// clamped so the window stays non-empty.
func (v *View) SetStart(start uint32) {
	start = align(start)
	if start >= v.end {
		start = v.end - WindowAlign
	}
	v.start = start
}

// SetEnd moves the upper bound, aligned down to 16 and clamped above
// the lower bound and within the address space.
func (v *View) SetEnd(end uint32) {
	end = align(end)
	if end > AddressSpace {
		end = AddressSpace
	}
	if end <= v.start {
		end = v.start + WindowAlign
	}
	v.end = end
}

// Start returns the inclusive lower bound.
func (v View) Start() uint32 { return v.start }

// End returns the exclusive upper bound.
func (v View) End() uint32 { return v.end }

// Len returns the window length in bytes.
func (v View) Len() uint32 { return v.end - v.start }

// Contains reports whether an address falls inside the window.
func (v View) Contains(addr uint32) bool {
	return addr >= v.start && addr < v.end
}

func align(a uint32) uint32 {
	return a &^ (WindowAlign - 1)
}

// Scale picks the block edge length in pixels: the largest square size
// such that rangeLen blocks approximately tile area pixels. The -0.5
// bias keeps rounding from picking a scale that overflows the surface.
func Scale(rangeLen uint32, area int) int {
	if rangeLen == 0 {
		return 1
	}
	s := int(math.Round(math.Sqrt(float64(area)/float64(rangeLen)) - 0.5))
	if s < 1 {
		return 1
	}
	return s
}

// BytesPerRow returns how many blocks fit one surface row.
func BytesPerRow(width, scale int) int {
	n := width / scale
	if n < 1 {
		return 1
	}
	return n
}

// RenderedTotalBytes limits the window to what the surface can hold.
// Excess range is simply not drawn.
func RenderedTotalBytes(rangeLen uint32, bytesPerRow, maxRows int) uint32 {
	capacity := uint32(bytesPerRow * maxRows)
	if rangeLen < capacity {
		return rangeLen
	}
	return capacity
}

// Grid is the frozen layout of one view on one surface. Both mapping
// directions read the same derived values, so hit-testing inverts
// rendering exactly.
type Grid struct {
	Width  int
	Height int
	View   View

	// BlockPx is the block edge length in pixels.
	BlockPx int
	// RowBytes is the number of blocks per surface row.
	RowBytes int
	// Total is the number of bytes actually rendered on the surface.
	Total uint32
}

// NewGrid derives the layout of view v on a width x height surface.
func NewGrid(width, height int, v View) Grid {
	s := Scale(v.Len(), width*height)
	bpr := BytesPerRow(width, s)
	return Grid{
		Width:    width,
		Height:   height,
		View:     v,
		BlockPx:  s,
		RowBytes: bpr,
		Total:    RenderedTotalBytes(v.Len(), bpr, height/s),
	}
}

// AddressToBlock locates the grid block of an address. ok is false when
// the address falls before the window or past the rendered portion of
// the surface.
func (g Grid) AddressToBlock(addr uint32) (row, col int, ok bool) {
	if addr < g.View.Start() {
		return 0, 0, false
	}
	rel := addr - g.View.Start()
	if rel >= g.Total {
		return 0, 0, false
	}
	return int(rel) / g.RowBytes, int(rel) % g.RowBytes, true
}

// BlockToAddress inverts AddressToBlock for a surface pixel. ok is false
// off the surface, right of the last block column, or below the rendered
// bytes.
func (g Grid) BlockToAddress(x, y int) (addr uint32, ok bool) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0, false
	}
	col := x / g.BlockPx
	row := y / g.BlockPx
	if col >= g.RowBytes {
		return 0, false
	}
	rel := uint32(row*g.RowBytes + col)
	if rel >= g.Total {
		return 0, false
	}
	return g.View.Start() + rel, true
}
