package egl

import "errors"

// Errors.
var (
	// ErrNotCurrent is returned by the export methods when the surface
	// is not the calling thread's current draw surface. The output
	// destination is left untouched.
	ErrNotCurrent = errors.New("egl: surface is not current")

	// ErrReleased is returned when a drawing or binding operation is
	// attempted on a surface after Release.
	ErrReleased = errors.New("egl: surface has been released")

	// ErrUnsupported is returned by NewContext on platforms without an
	// EGL implementation.
	ErrUnsupported = errors.New("egl: not supported on this platform")

	// ErrNoExtension is returned by SetPresentationTime when the display
	// does not expose the presentation-time extension.
	ErrNoExtension = errors.New("egl: eglPresentationTimeANDROID not available")
)
