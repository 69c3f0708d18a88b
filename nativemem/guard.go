// Package nativemem brackets operations on native memory so that the memory
// is released on every exit path, including panics.
package nativemem

import (
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// Allocator acquires and releases fixed blocks of native memory.
type Allocator interface {
	Alloc(size int) (uintptr, error)
	Free(ptr uintptr) error
}

// ReleaseFunc releases a block that an external call allocated on the
// caller's behalf.
type ReleaseFunc func(ptr uintptr) error

// Guarded acquires size bytes from alloc and passes them to op as a byte
// slice. The block is released after op returns or panics; a panic continues
// unwinding once the release is done. Release never happens before op has
// exited, and always before Guarded returns.
//
// The slice is a view into the native block and must not be retained past
// op.
func Guarded(alloc Allocator, size int, op func(buf []byte) error) error {
	ptr, err := alloc.Alloc(size)
	if err != nil {
		return fmt.Errorf("could not allocate %d bytes of native memory, reason: %w", size, err)
	}
	defer release(alloc.Free, ptr)

	return op(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size))
}

// GuardedExternal passes ptr to op and afterwards releases it via rel,
// regardless of how op exits. A null ptr is passed through to op without a
// release.
func GuardedExternal(ptr uintptr, rel ReleaseFunc, op func(ptr uintptr) error) error {
	if ptr != 0 {
		defer release(rel, ptr)
	}
	return op(ptr)
}

// A failed release happens after the primary outcome is already determined
// and cannot be recovered from, so it must not mask that outcome. It goes to
// the log instead of the error return, always.
func release(rel ReleaseFunc, ptr uintptr) {
	if err := rel(ptr); err != nil {
		logrus.WithFields(logrus.Fields{
			"address": fmt.Sprintf("0x%X", ptr),
		}).WithError(err).Error("Memory leak, could not release native memory.")
	}
}
