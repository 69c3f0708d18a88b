package nativemem

import (
	"unsafe"

	"github.com/fkie-cad/winmarshal/win32"
	"github.com/fkie-cad/winmarshal/winstr"
)

// LocalAllocator acquires blocks through kernel32 LocalAlloc/LocalFree.
type LocalAllocator struct{}

func (LocalAllocator) Alloc(size int) (uintptr, error) {
	return win32.LocalAlloc(win32.LMemFixed, size)
}

func (LocalAllocator) Free(ptr uintptr) error {
	return win32.LocalFree(ptr)
}

// WithWideString encodes s into a freshly allocated native block, terminator
// included, and passes the block to op. The block is released when op
// returns and must not be retained past it.
func WithWideString(s string, op func(buf []byte) error) error {
	units := winstr.Encode(s)
	return Guarded(LocalAllocator{}, len(units)*2, func(buf []byte) error {
		winstr.PutUnits(buf, units)
		return op(buf)
	})
}

// WithExternalPointer runs op on a pointer that an API call allocated on the
// caller's behalf and releases it via LocalFree afterwards. Null pointers
// are passed through without a release.
func WithExternalPointer(ptr uintptr, op func(ptr uintptr) error) error {
	return GuardedExternal(ptr, win32.LocalFree, op)
}

// DecodeAndFree decodes the terminated wide string at ptr, then releases ptr
// via LocalFree. Several APIs return strings the caller is required to
// LocalFree; this is the convert-then-release discipline in one call.
// maxUnits bounds the terminator scan as in winstr.DecodePtr.
func DecodeAndFree(ptr *uint16, maxUnits int) (string, error) {
	var s string
	err := WithExternalPointer(uintptr(unsafe.Pointer(ptr)), func(p uintptr) error {
		if p == 0 {
			return nil
		}
		var decodeErr error
		s, decodeErr = winstr.DecodePtr((*uint16)(unsafe.Pointer(p)), maxUnits)
		return decodeErr
	})
	return s, err
}
