package winstr

import "unsafe"

// DecodePtr decodes the terminated wide string at ptr, scanning at most
// maxUnits code units (DefaultMaxUnits if maxUnits <= 0). A nil ptr decodes
// to the empty string.
//
// The true length of an API-returned string is genuinely unknowable, so the
// buffer behind ptr is assumed to hold at least maxUnits units or a
// terminator, whichever comes first. Everything beyond that is a caller
// error.
func DecodePtr(ptr *uint16, maxUnits int) (string, error) {
	if ptr == nil {
		return "", nil
	}
	if maxUnits <= 0 {
		maxUnits = DefaultMaxUnits
	}
	region := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), maxUnits*2)
	return DecodeUntilTerminator(region, maxUnits)
}
