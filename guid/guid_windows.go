package guid

import "golang.org/x/sys/windows"

// Windows returns g as the x/sys/windows type, for passing to API calls.
// The layouts are identical.
func (g GUID) Windows() windows.GUID {
	return windows.GUID(g)
}

// FromWindows converts a GUID received from an API call.
func FromWindows(g windows.GUID) GUID {
	return GUID(g)
}
