// Package guid implements the 16 byte structured identifier used throughout
// the win32 ABI, together with its canonical hyphenated hex textual form.
package guid

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// GUID is the native layout of a globally unique identifier.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// FormatError reports identifier text that does not match the canonical
// 8-4-4-4-12 grouped hex form.
type FormatError struct {
	Text string
}

func (e *FormatError) Error() string {
	return "Bad identifier format"
}

const textLen = 36

// Parse converts the canonical textual form "XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX"
// into a GUID. Hex digits are accepted in either case; everything else about
// the format is strict.
func Parse(text string) (GUID, error) {
	var g GUID

	if len(text) != textLen ||
		text[8] != '-' || text[13] != '-' || text[18] != '-' || text[23] != '-' {
		return g, &FormatError{Text: text}
	}

	d1, err1 := strconv.ParseUint(text[0:8], 16, 32)
	d2, err2 := strconv.ParseUint(text[9:13], 16, 16)
	d3, err3 := strconv.ParseUint(text[14:18], 16, 16)
	d4, err4 := strconv.ParseUint(text[19:23], 16, 16)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return g, &FormatError{Text: text}
	}

	g.Data1 = uint32(d1)
	g.Data2 = uint16(d2)
	g.Data3 = uint16(d3)
	g.Data4[0] = byte(d4 >> 8)
	g.Data4[1] = byte(d4)

	// The last group is 8 independent bytes, each parsed from its own
	// hex digit pair.
	for i := 0; i < 6; i++ {
		b, err := strconv.ParseUint(text[24+2*i:26+2*i], 16, 8)
		if err != nil {
			return GUID{}, &FormatError{Text: text}
		}
		g.Data4[2+i] = byte(b)
	}

	return g, nil
}

// String returns the canonical textual form, lowercase.
func (g GUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// Bytes returns the in-memory representation: little-endian integer fields
// followed by Data4 verbatim.
func (g GUID) Bytes() [16]byte {
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:], g.Data1)
	binary.LittleEndian.PutUint16(buf[4:], g.Data2)
	binary.LittleEndian.PutUint16(buf[6:], g.Data3)
	copy(buf[8:], g.Data4[:])
	return buf
}

// FromBytes reads a GUID from the first 16 bytes of region, inverse of
// Bytes.
func FromBytes(region []byte) GUID {
	var g GUID
	g.Data1 = binary.LittleEndian.Uint32(region[0:])
	g.Data2 = binary.LittleEndian.Uint16(region[4:])
	g.Data3 = binary.LittleEndian.Uint16(region[6:])
	copy(g.Data4[:], region[8:16])
	return g
}

// Equal compares the full 16 byte representations, so a mismatch in any
// field yields inequality.
func Equal(a, b GUID) bool {
	return a.Bytes() == b.Bytes()
}
