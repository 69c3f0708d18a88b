// Package winmarshal implements the marshalling primitives needed when
// calling win32 APIs directly: integer types with the exact widths the ABI
// mandates, typed accessors over raw memory regions, wide-string and GUID
// codecs, and scoped release of native memory.
//
// The type and codec packages compile on every platform so that callers can
// unit test their marshalling logic anywhere; only the subpackages that
// actually touch kernel32 are restricted to windows.
package winmarshal
