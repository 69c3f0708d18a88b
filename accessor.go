package winmarshal

import (
	"encoding/binary"
	"fmt"
)

// The accessors below interpret a raw memory region at a byte offset using
// the widths from the type registry. All multi-byte values are little
// endian. Offsets outside the region are a caller error and panic via the
// slice bounds check; this layer does no validation of its own.

func ReadByte(region []byte, off int) BYTE {
	return BYTE(region[off])
}

func PutByte(region []byte, off int, v BYTE) {
	region[off] = byte(v)
}

func ReadWord(region []byte, off int) WORD {
	return WORD(binary.LittleEndian.Uint16(region[off:]))
}

func PutWord(region []byte, off int, v WORD) {
	binary.LittleEndian.PutUint16(region[off:], uint16(v))
}

// ReadWchar reads a single wide-string code unit.
func ReadWchar(region []byte, off int) WCHAR {
	return WCHAR(binary.LittleEndian.Uint16(region[off:]))
}

func ReadDword(region []byte, off int) DWORD {
	return DWORD(binary.LittleEndian.Uint32(region[off:]))
}

func PutDword(region []byte, off int, v DWORD) {
	binary.LittleEndian.PutUint32(region[off:], uint32(v))
}

// ReadBool reads a win32_bool: a 4 byte signed integer that is true iff it
// is not 0. Comparing against 1 would be wrong, the ABI documents success
// values as "non-zero".
func ReadBool(region []byte, off int) bool {
	return LONG(binary.LittleEndian.Uint32(region[off:])) != 0
}

// ReadHandle reads a native handle. The width is fixed once at startup from
// the registry's pointer-width entry, not decided per call.
func ReadHandle(region []byte, off int) HANDLE {
	return readHandleSized(region, off, handleSize)
}

func PutHandle(region []byte, off int, h HANDLE) {
	putHandleSized(region, off, handleSize, h)
}

func readHandleSized(region []byte, off, size int) HANDLE {
	switch size {
	case 4:
		return HANDLE(binary.LittleEndian.Uint32(region[off:]))
	case 8:
		return HANDLE(binary.LittleEndian.Uint64(region[off:]))
	}
	panic(fmt.Sprintf("invalid handle size %d", size))
}

func putHandleSized(region []byte, off, size int, h HANDLE) {
	switch size {
	case 4:
		binary.LittleEndian.PutUint32(region[off:], uint32(h))
	case 8:
		binary.LittleEndian.PutUint64(region[off:], uint64(h))
	default:
		panic(fmt.Sprintf("invalid handle size %d", size))
	}
}
