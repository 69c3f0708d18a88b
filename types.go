package winmarshal

import (
	"sort"

	"github.com/fkie-cad/winmarshal/arch"
)

// Native integer types of the win32 ABI. Each alias carries the exact width
// the ABI mandates. Host aliases with platform-variable widths (int, uint)
// are never used for ABI data; where the width genuinely varies with the
// address size (HANDLE, HLOCAL) the alias is pointer-sized by definition.
type (
	BYTE    uint8
	WORD    uint16
	WCHAR   uint16
	DWORD   uint32
	LONG    int32
	ULONG   uint32
	BOOL    int32
	HRESULT int32
	HANDLE  uintptr
	HLOCAL  uintptr
)

// TypeInfo describes the width and signedness of a registered native type
// alias.
type TypeInfo struct {
	Name   string
	Bits   int
	Signed bool
}

var typeRegistry = buildTypeRegistry()

var handleSize = typeRegistry["handle"].Bits / 8

func buildTypeRegistry() map[string]TypeInfo {
	ptrBits := int(arch.NativeBitness())
	infos := []TypeInfo{
		{Name: "byte", Bits: 8, Signed: false},
		{Name: "word", Bits: 16, Signed: false},
		{Name: "wchar", Bits: 16, Signed: false},
		{Name: "dword", Bits: 32, Signed: false},
		{Name: "win32_ulong", Bits: 32, Signed: false},
		{Name: "win32_long", Bits: 32, Signed: true},
		// BOOL is a signed 32-bit integer, not a byte. API success
		// values are documented as "non-zero", not as 1.
		{Name: "win32_bool", Bits: 32, Signed: true},
		{Name: "hresult", Bits: 32, Signed: true},
		{Name: "handle", Bits: ptrBits, Signed: false},
		{Name: "hlocal", Bits: ptrBits, Signed: false},
	}

	registry := make(map[string]TypeInfo, len(infos))
	for _, info := range infos {
		registry[info.Name] = info
	}
	return registry
}

// TypeByName resolves a native type alias to its width and signedness. The
// registry is fixed at startup; lookups are safe for concurrent use.
func TypeByName(name string) (TypeInfo, bool) {
	info, ok := typeRegistry[name]
	return info, ok
}

// Types returns all registered aliases, sorted by name. The returned slice
// is a copy.
func Types() []TypeInfo {
	infos := make([]TypeInfo, 0, len(typeRegistry))
	for _, info := range typeRegistry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// HandleSize returns the size in bytes of a native handle, determined once
// at startup from the registry's pointer-width entry.
func HandleSize() int {
	return handleSize
}
