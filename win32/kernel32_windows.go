package win32

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32   = windows.NewLazySystemDLL("kernel32.dll")
	localAlloc = kernel32.NewProc("LocalAlloc")
)

// LocalAlloc acquires size bytes of native memory. The block must be
// released with LocalFree, exactly once.
func LocalAlloc(flags uint32, size int) (uintptr, error) {
	r0, _, lastErr := localAlloc.Call(uintptr(flags), uintptr(size))
	if r0 == Null {
		return Null, lastErr
	}
	return r0, nil
}

// LocalFree releases a block that came from LocalAlloc or from an API call
// that documents LocalFree as its release function. The underlying call
// returns the null handle on success and the block itself on failure.
//
// Exported because the scoped guards in nativemem call it directly.
func LocalFree(ptr uintptr) error {
	if r0, err := windows.LocalFree(windows.Handle(ptr)); r0 != 0 {
		return err
	}
	return nil
}
