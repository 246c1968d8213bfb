package layout

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/mapmerge/mapmerge/internal/reconcile"
)

// Render rasterizes the table onto the grid's surface. One block is
// drawn per byte per populated side; a Green entry draws only its A-side
// region since both sides are identical. Entries are drawn in table
// order, so overlapping regions resolve to the later entry.
func (g Grid) Render(t *reconcile.Table) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for _, e := range t.Entries() {
		if e.A != nil {
			g.paintRegion(img, e.A, BlockColor(e.Category, SideA, e.Checked))
		}
		if e.B != nil && e.Category != reconcile.Green {
			g.paintRegion(img, e.B, BlockColor(e.Category, SideB, e.Checked))
		}
	}
	return img
}

func (g Grid) paintRegion(img *image.RGBA, s *reconcile.Side, c color.RGBA) {
	for addr := s.Address; addr < s.Address+s.Size; addr++ {
		row, col, ok := g.AddressToBlock(addr)
		if !ok {
			continue
		}
		g.paintBlock(img, row, col, c)
	}
}

func (g Grid) paintBlock(img *image.RGBA, row, col int, c color.RGBA) {
	x0 := col * g.BlockPx
	y0 := row * g.BlockPx
	r := image.Rect(x0, y0, x0+g.BlockPx, y0+g.BlockPx)
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Cells rasterizes the table at one byte per cell for character-based
// surfaces. The returned matrix is Height rows of RowBytes colors; cells
// past the rendered total hold the background color. Used by the
// terminal grid view, which shares the color policy with the pixel
// renderer.
func (g Grid) Cells(t *reconcile.Table) [][]color.RGBA {
	rows := int(g.Total+uint32(g.RowBytes)-1) / g.RowBytes
	cells := make([][]color.RGBA, rows)
	for i := range cells {
		cells[i] = make([]color.RGBA, g.RowBytes)
		for j := range cells[i] {
			cells[i][j] = Background
		}
	}

	paint := func(s *reconcile.Side, c color.RGBA) {
		for addr := s.Address; addr < s.Address+s.Size; addr++ {
			row, col, ok := g.AddressToBlock(addr)
			if !ok {
				continue
			}
			cells[row][col] = c
		}
	}

	for _, e := range t.Entries() {
		if e.A != nil {
			paint(e.A, BlockColor(e.Category, SideA, e.Checked))
		}
		if e.B != nil && e.Category != reconcile.Green {
			paint(e.B, BlockColor(e.Category, SideB, e.Checked))
		}
	}
	return cells
}
