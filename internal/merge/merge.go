// Package merge produces a merged firmware image from two loaded
// binaries and a reconciled entry table.
package merge

import (
	"errors"

	"github.com/mapmerge/mapmerge/internal/reconcile"
	"github.com/mapmerge/mapmerge/internal/rom"
)

// ErrMissingInput is returned when either firmware image is absent.
// Export never produces partial output.
var ErrMissingInput = errors.New("merge: both firmware images are required")

// Report summarizes one export. Skipped counts checked entries that
// failed a merge precondition; it is informational only and never makes
// the export fail.
type Report struct {
	// Copied is the number of entries whose bytes were transferred.
	Copied int
	// Skipped is the number of checked entries left untouched: one side
	// missing, sizes differing, or a range out of bounds.
	Skipped int
}

// Export builds the merged image: a copy of imgB with the region of
// every eligible checked entry overwritten by version A's bytes.
//
// An entry is eligible only when both sides are present and equally
// sized; the size equality rule prevents partial or misaligned
// overwrites and is never relaxed, checked or not. Entries whose source
// or destination range falls outside the image are skipped silently.
func Export(imgA, imgB *rom.Image, t *reconcile.Table) ([]byte, Report, error) {
	if imgA == nil || imgB == nil {
		return nil, Report{}, ErrMissingInput
	}

	out := make([]byte, rom.Size)
	copy(out, imgB.Bytes())

	var rep Report
	a := imgA.Bytes()
	for _, e := range t.Entries() {
		if !e.Checked {
			continue
		}
		if !e.Matched() || e.A.Size != e.B.Size {
			rep.Skipped++
			continue
		}
		size := uint64(e.A.Size)
		src := uint64(e.A.Address)
		dst := uint64(e.B.Address)
		if src+size > rom.Size || dst+size > rom.Size {
			rep.Skipped++
			continue
		}
		copy(out[dst:dst+size], a[src:src+size])
		rep.Copied++
	}
	return out, rep, nil
}
