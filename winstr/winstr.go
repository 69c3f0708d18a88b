// Package winstr converts between Go strings and the null-terminated,
// 2-byte-code-unit wide strings of the win32 ABI.
//
// Decoding never casts memory into a string directly. It always goes
// units -> runes -> string, so that the result is valid host text even
// when the source buffer is not.
package winstr

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// DefaultMaxUnits bounds terminator scans over buffers of unknown length.
// Some APIs return strings with no documented maximum length and no length
// out-parameter, only the terminator; scanning without a bound risks reading
// unmapped memory. The value is a safety margin, not a protocol constant,
// callers with better knowledge should pass their own bound.
const DefaultMaxUnits = 512

// DecodeError reports a byte sequence that is not valid wide-string text.
type DecodeError struct {
	// Unit is the index of the offending code unit.
	Unit int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid wide string, broken surrogate pair at code unit %d", e.Unit)
}

// Encode converts s to wide-string code units with a trailing terminator
// unit. The empty string encodes to a lone terminator.
func Encode(s string) []uint16 {
	units := utf16.Encode([]rune(s))
	return append(units, 0)
}

// EncodedLen returns the number of code units Encode produces for s,
// including the terminator.
func EncodedLen(s string) int {
	return len(utf16.Encode([]rune(s))) + 1
}

// EncodedSize returns the size in bytes of the encoded form of s, including
// the terminator.
func EncodedSize(s string) int {
	return EncodedLen(s) * 2
}

// EncodeBytes encodes s into a little-endian byte serialization, terminator
// included, ready to be handed to a native call as a raw region.
func EncodeBytes(s string) []byte {
	units := Encode(s)
	region := make([]byte, len(units)*2)
	PutUnits(region, units)
	return region
}

// PutUnits writes units little-endian into region, starting at offset 0.
func PutUnits(region []byte, units []uint16) {
	for i, u := range units {
		binary.LittleEndian.PutUint16(region[2*i:], u)
	}
}

// DecodeFixed interprets exactly unitCount little-endian code units from the
// start of region. Terminator units within the range are decoded like any
// other unit.
func DecodeFixed(region []byte, unitCount int) (string, error) {
	units := make([]uint16, unitCount)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(region[2*i:])
	}
	return decodeUnits(units)
}

// DecodeUntilTerminator scans region code unit by code unit for a terminator
// and decodes everything before it. At most maxUnits units are scanned; if
// no terminator occurs within the bound, all maxUnits units are decoded
// untruncated. maxUnits <= 0 selects DefaultMaxUnits. The scan never runs
// past the end of region.
func DecodeUntilTerminator(region []byte, maxUnits int) (string, error) {
	if maxUnits <= 0 {
		maxUnits = DefaultMaxUnits
	}
	if avail := len(region) / 2; maxUnits > avail {
		maxUnits = avail
	}

	units := make([]uint16, 0, maxUnits)
	for i := 0; i < maxUnits; i++ {
		u := binary.LittleEndian.Uint16(region[2*i:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return decodeUnits(units)
}

func decodeUnits(units []uint16) (string, error) {
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u >= 0xd800 && u < 0xdc00:
			if i+1 >= len(units) || units[i+1] < 0xdc00 || units[i+1] >= 0xe000 {
				return "", &DecodeError{Unit: i}
			}
			i++
		case u >= 0xdc00 && u < 0xe000:
			return "", &DecodeError{Unit: i}
		}
	}
	return string(utf16.Decode(units)), nil
}
