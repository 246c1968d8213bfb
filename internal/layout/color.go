package layout

import (
	"image/color"

	"github.com/mapmerge/mapmerge/internal/reconcile"
)

// SideID distinguishes the two firmware versions when coloring blocks.
type SideID int

const (
	SideA SideID = iota
	SideB
)

// Background fills the unrendered tail of a surface.
var Background = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

// Block colors per category and side. Green entries are identical on
// both sides, so they carry a single neutral gray; Yellow gets a
// low-saturation hue per side, Red a dark hue per side.
var (
	greenBoth = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

	yellowA = color.RGBA{R: 0x8c, G: 0x84, B: 0x50, A: 0xff}
	yellowB = color.RGBA{R: 0x8c, G: 0x6c, B: 0x44, A: 0xff}

	redA = color.RGBA{R: 0x6a, G: 0x28, B: 0x28, A: 0xff}
	redB = color.RGBA{R: 0x60, G: 0x28, B: 0x4e, A: 0xff}
)

// checkedBrighten is added to each channel of a checked entry's color.
const checkedBrighten = 0x30

// BlockColor is the rendering color policy: a pure function of the
// entry's category, the side being drawn, and its checked flag.
func BlockColor(cat reconcile.Category, side SideID, checked bool) color.RGBA {
	var c color.RGBA
	switch cat {
	case reconcile.Green:
		c = greenBoth
	case reconcile.Yellow:
		if side == SideA {
			c = yellowA
		} else {
			c = yellowB
		}
	default:
		if side == SideA {
			c = redA
		} else {
			c = redB
		}
	}
	if checked {
		c = brighten(c, checkedBrighten)
	}
	return c
}

func brighten(c color.RGBA, add uint8) color.RGBA {
	return color.RGBA{
		R: satAdd(c.R, add),
		G: satAdd(c.G, add),
		B: satAdd(c.B, add),
		A: c.A,
	}
}

func satAdd(v, add uint8) uint8 {
	s := uint16(v) + uint16(add)
	if s > 0xff {
		return 0xff
	}
	return uint8(s)
}
