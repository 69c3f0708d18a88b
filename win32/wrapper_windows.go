package win32

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/targodan/go-errors"
	"golang.org/x/sys/windows"
)

// ReleaseHandle closes an OS resource handle, best effort. Handles must be
// closed exactly once; a failure here usually means a double close or a
// stale handle, which is a caller bug this layer can only surface.
func ReleaseHandle(h windows.Handle) {
	if h == 0 {
		return
	}
	if err := windows.CloseHandle(h); err != nil {
		logrus.WithFields(logrus.Fields{
			"handle": fmt.Sprintf("0x%X", uintptr(h)),
		}).WithError(err).Error("Could not close handle.")
	}
}

// CloseHandles closes all given handles, skipping null ones, and collects
// every failure.
func CloseHandles(handles ...windows.Handle) error {
	var err error
	for _, h := range handles {
		if h == 0 {
			continue
		}
		if tmpErr := windows.CloseHandle(h); tmpErr != nil {
			err = errors.NewMultiError(err, fmt.Errorf("could not close handle 0x%X, reason: %w", uintptr(h), tmpErr))
		}
	}
	return err
}
