package definition

import (
	"encoding/xml"
	"sort"
	"strconv"
	"strings"

	"github.com/mapmerge/mapmerge/internal/safe"
)

// maxDocumentSize caps how much of a definition file is read. Real ECU
// definitions top out well under a megabyte; 16 MiB leaves generous room.
const maxDocumentSize = 16 << 20

// document mirrors the XML schema of a definition file.
type document struct {
	XMLName   xml.Name   `xml:"definition"`
	Name      string     `xml:"name,attr"`
	Version   string     `xml:"version,attr"`
	Bases     []base     `xml:"base"`
	Tables    []table    `xml:"table"`
	Constants []constant `xml:"constant"`
	Patches   []patch    `xml:"patch"`
}

type base struct {
	Offset   string `xml:"offset,attr"`
	Subtract string `xml:"subtract,attr"`
}

type table struct {
	Name        string `xml:"name,attr"`
	Description string `xml:"description,attr"`
	Axes        []axis `xml:"axis"`
}

type axis struct {
	Type        string `xml:"type,attr"`
	Address     string `xml:"address,attr"`
	StorageBits string `xml:"storagebits,attr"`
	Rows        string `xml:"rows,attr"`
	Cols        string `xml:"cols,attr"`
}

type constant struct {
	Name        string `xml:"name,attr"`
	Description string `xml:"description,attr"`
	Address     string `xml:"address,attr"`
	StorageBits string `xml:"storagebits,attr"`
}

type patch struct {
	Name        string       `xml:"name,attr"`
	Description string       `xml:"description,attr"`
	Entries     []patchEntry `xml:"entry"`
}

type patchEntry struct {
	Name     string `xml:"name,attr"`
	Address  string `xml:"address,attr"`
	DataSize string `xml:"datasize,attr"`
	Patch    string `xml:"patch,attr"`
	Base     string `xml:"base,attr"`
}

// Parse decodes one definition document and returns its descriptors
// sorted ascending by start address. Ties keep declaration order: tables
// first, then constants, then patch entries.
func Parse(data []byte) ([]Descriptor, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	offset := baseOffset(doc.Bases)

	descs := make([]Descriptor, 0, len(doc.Tables)+len(doc.Constants))

	for _, t := range doc.Tables {
		z, ok := zAxis(t.Axes)
		if !ok {
			// A table without a placement-carrying z axis occupies no
			// bytes of the image.
			continue
		}
		elem := parseNumber(z.StorageBits) / 8
		size := numberOr(z.Rows, 1) * numberOr(z.Cols, 1) * elem
		start := offset + parseHex(z.Address)
		descs = append(descs, Descriptor{
			Title:       t.Name,
			Start:       start,
			End:         start + size,
			Size:        size,
			Description: t.Description,
		})
	}

	for _, c := range doc.Constants {
		size := parseNumber(c.StorageBits) / 8
		start := offset + parseHex(c.Address)
		descs = append(descs, Descriptor{
			Title:       c.Name,
			Start:       start,
			End:         start + size,
			Size:        size,
			Description: c.Description,
		})
	}

	for _, p := range doc.Patches {
		for _, e := range p.Entries {
			// datasize is hex-encoded in the source format, unlike the
			// decimal storagebits of tables and constants.
			size := parseHex(e.DataSize)
			start := offset + parseHex(e.Address)
			descs = append(descs, Descriptor{
				Title:       p.Name + " - " + e.Name,
				Start:       start,
				End:         start + size,
				Size:        size,
				Description: patchDescription(p.Description, e),
				PatchData:   e.Patch,
				BaseData:    e.Base,
			})
		}
	}

	sort.SliceStable(descs, func(i, j int) bool {
		return descs[i].Start < descs[j].Start
	})
	return descs, nil
}

// ParseFile reads and parses a definition file from disk.
func ParseFile(path string) ([]Descriptor, error) {
	data, err := safe.ReadFile(path, maxDocumentSize)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// baseOffset resolves the document's effective address offset. The first
// base declaration wins; a missing declaration means no adjustment.
func baseOffset(bases []base) uint32 {
	if len(bases) == 0 {
		return 0
	}
	b := bases[0]
	return parseOffset(b.Offset) - parseOffset(b.Subtract)
}

func zAxis(axes []axis) (axis, bool) {
	for _, a := range axes {
		if strings.EqualFold(a.Type, "z") && a.Address != "" {
			return a, true
		}
	}
	return axis{}, false
}

func patchDescription(groupDesc string, e patchEntry) string {
	var b strings.Builder
	b.WriteString(groupDesc)
	if e.Patch != "" {
		b.WriteString("\npatch: ")
		b.WriteString(e.Patch)
	}
	if e.Base != "" {
		b.WriteString("\nbase: ")
		b.WriteString(e.Base)
	}
	return b.String()
}

// parseOffset accepts 0x-prefixed hex or plain decimal. Malformed values
// fall back to 0; parsing continues.
func parseOffset(s string) uint32 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// parseHex decodes an unprefixed hex attribute, the address encoding of
// the definition format. Malformed values fall back to 0.
func parseHex(s string) uint32 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// parseNumber decodes a decimal attribute, falling back to 0.
func parseNumber(s string) uint32 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// numberOr decodes a decimal attribute, using def when absent. Present
// but malformed values still fall back to 0.
func numberOr(s string, def uint32) uint32 {
	if s == "" {
		return def
	}
	return parseNumber(s)
}
