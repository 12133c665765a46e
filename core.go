package egl

import "time"

// NativeSurface is an opaque handle to a native EGL surface. The zero
// value, NoSurface, is the "no surface" sentinel: a released Surface
// holds NoSurface and a valid handle is never zero.
type NativeSurface uintptr

// NoSurface is the sentinel for "no native surface" (EGL_NO_SURFACE).
const NoSurface NativeSurface = 0

// IsValid reports whether the handle refers to a live native surface.
func (s NativeSurface) IsValid() bool { return s != NoSurface }

// NativeWindow is an opaque handle to a platform window object
// (ANativeWindow, X11 Window, wl_egl_window, ...). How the handle is
// obtained is platform-specific and outside this package.
type NativeWindow uintptr

// NativeDisplay is an opaque handle to a platform display connection.
// The zero value selects EGL_DEFAULT_DISPLAY.
type NativeDisplay uintptr

// TextureProducer is a surface abstraction that hands out frames through
// a native window handle, such as a SurfaceTexture-style stream consumer.
// A window surface created from a producer renders into the producer's
// buffer queue instead of an on-screen window.
type TextureProducer interface {
	// NativeWindow returns the producer's native window handle.
	NativeWindow() NativeWindow
}

// SurfaceAttrib identifies a queryable native surface attribute.
type SurfaceAttrib int

// Surface attributes understood by Core.QuerySurface.
const (
	// AttribWidth is the surface width in pixels (EGL_WIDTH).
	AttribWidth SurfaceAttrib = 0x3057

	// AttribHeight is the surface height in pixels (EGL_HEIGHT).
	AttribHeight SurfaceAttrib = 0x3056
)

// Core is the graphics-context collaborator consumed by Surface.
//
// The real implementation is Context, which drives libEGL. Tests and
// alternative backends provide their own Core; Surface performs no work
// beyond forwarding to it.
//
// Core methods follow the EGL threading model: MakeCurrent binds to the
// calling thread, and all surface operations after that must stay on
// that thread. Implementations are not required to be safe for
// concurrent use.
type Core interface {
	// CreateOffscreenSurface allocates a pbuffer surface with fixed
	// pixel dimensions.
	CreateOffscreenSurface(width, height int) (NativeSurface, error)

	// CreateWindowSurface wraps an existing native window.
	CreateWindowSurface(win NativeWindow) (NativeSurface, error)

	// QuerySurface returns the value of a native surface attribute.
	QuerySurface(s NativeSurface, attr SurfaceAttrib) (int, error)

	// ReleaseSurface destroys the native surface resource.
	// Implementations should treat NoSurface as a no-op.
	ReleaseSurface(s NativeSurface) error

	// MakeCurrent binds s as both draw and read target for the calling
	// thread.
	MakeCurrent(s NativeSurface) error

	// MakeCurrentReadFrom binds draw as the draw target and read as the
	// read target, in that order.
	MakeCurrentReadFrom(draw, read NativeSurface) error

	// MakeNothingCurrent unbinds any surface and context from the
	// calling thread.
	MakeNothingCurrent() error

	// IsCurrent reports whether s is the calling thread's currently
	// bound draw surface for this core's context.
	IsCurrent(s NativeSurface) bool

	// SwapBuffers posts the surface's back buffer to its consumer.
	SwapBuffers(s NativeSurface) error

	// SetPresentationTime attaches a presentation timestamp to the next
	// frame swapped on s, for compositor frame pacing.
	SetPresentationTime(s NativeSurface, t time.Duration) error

	// ReadPixels reads the currently bound framebuffer into dst as
	// RGBA8888, 4 bytes per pixel, rows ordered bottom to top. dst must
	// hold at least width*height*4 bytes.
	ReadPixels(dst []byte, width, height int) error
}
