package nativemem

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeAllocator hands out Go-managed blocks so the guard semantics can be
// exercised on any platform. The backing slice is kept alive in the struct.
type fakeAllocator struct {
	block []byte

	allocs   int
	frees    int
	freeErr  error
	allocErr error
}

func (a *fakeAllocator) Alloc(size int) (uintptr, error) {
	if a.allocErr != nil {
		return 0, a.allocErr
	}
	a.allocs++
	a.block = make([]byte, size)
	return uintptr(unsafe.Pointer(&a.block[0])), nil
}

func (a *fakeAllocator) Free(ptr uintptr) error {
	a.frees++
	return a.freeErr
}

func TestGuarded(t *testing.T) {
	Convey("A guarded allocation", t, func() {
		alloc := &fakeAllocator{}

		Convey("should pass a block of the requested size to the operation.", func() {
			var got int
			err := Guarded(alloc, 12, func(buf []byte) error {
				got = len(buf)
				return nil
			})
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 12)
		})

		Convey("should release exactly once after a normal return.", func() {
			freesDuringOp := -1
			err := Guarded(alloc, 4, func(buf []byte) error {
				freesDuringOp = alloc.frees
				return nil
			})
			So(err, ShouldBeNil)
			So(freesDuringOp, ShouldEqual, 0)
			So(alloc.frees, ShouldEqual, 1)
		})

		Convey("should release and propagate when the operation fails.", func() {
			opErr := errors.New("op failed")
			err := Guarded(alloc, 4, func(buf []byte) error {
				return opErr
			})
			So(err, ShouldEqual, opErr)
			So(alloc.frees, ShouldEqual, 1)
		})

		Convey("should release even when the operation panics.", func() {
			So(func() {
				_ = Guarded(alloc, 4, func(buf []byte) error {
					panic("boom")
				})
			}, ShouldPanicWith, "boom")
			So(alloc.frees, ShouldEqual, 1)
		})

		Convey("should surface allocation failure without releasing.", func() {
			alloc.allocErr = errors.New("no memory")
			called := false
			err := Guarded(alloc, 4, func(buf []byte) error {
				called = true
				return nil
			})
			So(err, ShouldNotBeNil)
			So(called, ShouldBeFalse)
			So(alloc.frees, ShouldEqual, 0)
		})

		Convey("should make writes through the block visible to the backing memory.", func() {
			err := Guarded(alloc, 4, func(buf []byte) error {
				buf[0] = 0xA5
				return nil
			})
			So(err, ShouldBeNil)
			So(alloc.block[0], ShouldEqual, byte(0xA5))
		})
	})
}

func TestGuardedExternal(t *testing.T) {
	backing := [1]byte{}
	ptr := uintptr(unsafe.Pointer(&backing[0]))

	Convey("An external pointer guard", t, func() {
		releases := 0
		rel := func(p uintptr) error {
			releases++
			return nil
		}

		Convey("should release a non-null pointer exactly once.", func() {
			err := GuardedExternal(ptr, rel, func(p uintptr) error {
				So(p, ShouldEqual, ptr)
				So(releases, ShouldEqual, 0)
				return nil
			})
			So(err, ShouldBeNil)
			So(releases, ShouldEqual, 1)
		})

		Convey("should release even when the operation panics.", func() {
			So(func() {
				_ = GuardedExternal(ptr, rel, func(p uintptr) error {
					panic("boom")
				})
			}, ShouldPanicWith, "boom")
			So(releases, ShouldEqual, 1)
		})

		Convey("should skip the release for a null pointer.", func() {
			called := false
			err := GuardedExternal(0, rel, func(p uintptr) error {
				called = true
				So(p, ShouldEqual, uintptr(0))
				return nil
			})
			So(err, ShouldBeNil)
			So(called, ShouldBeTrue)
			So(releases, ShouldEqual, 0)
		})

		Convey("should propagate the operation's error after releasing.", func() {
			opErr := errors.New("op failed")
			err := GuardedExternal(ptr, rel, func(p uintptr) error {
				return opErr
			})
			So(err, ShouldEqual, opErr)
			So(releases, ShouldEqual, 1)
		})
	})
}

func TestReleaseFailureIsDiagnosticOnly(t *testing.T) {
	Convey("A failing release", t, func() {
		hook := logtest.NewGlobal()
		defer hook.Reset()

		relErr := errors.New("still in use")
		rel := func(p uintptr) error { return relErr }

		backing := [1]byte{}
		ptr := uintptr(unsafe.Pointer(&backing[0]))

		err := GuardedExternal(ptr, rel, func(p uintptr) error {
			return nil
		})

		Convey("must not mask the primary outcome.", func() {
			So(err, ShouldBeNil)
		})

		Convey("must be observable as a memory leak diagnostic.", func() {
			entries := hook.AllEntries()
			So(len(entries), ShouldEqual, 1)
			So(entries[0].Level, ShouldEqual, logrus.ErrorLevel)
			So(entries[0].Message, ShouldContainSubstring, "Memory leak")
		})
	})
}

func TestGuardedReleaseFailureKeepsResult(t *testing.T) {
	Convey("A guarded allocation whose release fails", t, func() {
		hook := logtest.NewGlobal()
		defer hook.Reset()

		alloc := &fakeAllocator{freeErr: errors.New("not ours")}

		err := Guarded(alloc, 4, func(buf []byte) error {
			return nil
		})

		Convey("should still report the operation's outcome.", func() {
			So(err, ShouldBeNil)
			So(alloc.frees, ShouldEqual, 1)
		})

		Convey("should log the leak.", func() {
			So(len(hook.AllEntries()), ShouldEqual, 1)
			So(hook.LastEntry().Message, ShouldContainSubstring, "Memory leak")
		})
	})
}
