// Package definition parses ECU firmware definition documents into an
// ordered list of symbol descriptors.
//
// A definition document is an XML description of the named regions of a
// firmware image: tables (2D maps with a placement-carrying z axis),
// scalar constants, and patch groups whose individual entries each
// describe a replacement byte range. Every address in the document is
// adjusted by a single base-offset declaration before it is emitted.
package definition

import "fmt"

// Descriptor is one declared region of a firmware image: a table, a
// constant, or a single patch entry.
type Descriptor struct {
	// Title identifies the region. Patch entries are titled
	// "<group name> - <entry name>".
	Title string

	// Start is the absolute byte address of the region after the
	// document's base offset has been applied.
	Start uint32

	// End is the exclusive end address. End == Start + Size.
	End uint32

	// Size of the region in bytes. Zero-size descriptors are legal;
	// they reconcile normally but never render.
	Size uint32

	Description string

	// PatchData and BaseData hold the raw replacement-byte strings of a
	// patch entry. Both are empty for table and constant descriptors.
	PatchData string
	BaseData  string
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s @ %05X (%d bytes)", d.Title, d.Start, d.Size)
}

// ParseError reports a structurally invalid definition document. Locally
// malformed numeric attributes inside an otherwise valid document do not
// produce a ParseError; they fall back to zero.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("definition: invalid document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
