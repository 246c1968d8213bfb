// Package rom loads and normalizes firmware image buffers.
//
// The tool operates on a fixed 512 KiB ECU address space. Whatever the
// host hands over is normalized to exactly that length: short buffers
// are zero-padded, long ones truncated. Length mismatches are never an
// error.
package rom

import (
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/mapmerge/mapmerge/internal/safe"
)

// Size is the fixed firmware image length in bytes (512 KiB).
const Size = 512 * 1024

// maxFileSize caps image file reads. Anything past 4x the address space
// is not a firmware dump for this ECU family.
const maxFileSize = 4 * Size

// Image is a normalized firmware buffer plus its content hash.
type Image struct {
	data []byte
	hash uint64
}

// Normalize pads or truncates a raw buffer to exactly Size bytes. The
// input is copied; the caller's slice is never aliased.
func Normalize(data []byte) []byte {
	out := make([]byte, Size)
	copy(out, data)
	return out
}

// New wraps a raw buffer as a normalized Image.
func New(data []byte) *Image {
	norm := Normalize(data)
	return &Image{data: norm, hash: xxh3.Hash(norm)}
}

// Load reads a firmware image from disk and normalizes it.
func Load(path string) (*Image, error) {
	data, err := safe.ReadFile(path, maxFileSize)
	if err != nil {
		return nil, err
	}
	return New(data), nil
}

// Bytes returns the normalized image contents, always Size bytes.
// Callers must treat the slice as read-only.
func (i *Image) Bytes() []byte {
	return i.data
}

// Hash returns the xxh3 content hash of the normalized image.
func (i *Image) Hash() uint64 {
	return i.hash
}

// HashString formats the content hash for logs and display.
func (i *Image) HashString() string {
	return fmt.Sprintf("%016x", i.hash)
}
