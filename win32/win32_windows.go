// Package win32 provides the WinAPI entry points backing the scoped memory
// guards, either inaccessible through golang.org/x/sys/windows or wrapped
// into a stricter form.
package win32

const DwordNegativeOne uintptr = 0xffffffff
const Null uintptr = 0

// LMemFixed requests a fixed (non-movable) block from LocalAlloc.
const LMemFixed uint32 = 0x0000
