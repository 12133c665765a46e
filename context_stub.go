//go:build !((linux || freebsd) && cgo)

package egl

import "time"

// Context is the real Core implementation over libEGL. This platform
// has no EGL implementation; NewContext returns ErrUnsupported and
// every Context method fails the same way.
type Context struct{}

var _ Core = (*Context)(nil)

// NewContext returns ErrUnsupported on platforms without EGL.
func NewContext(opts ...ContextOption) (*Context, error) {
	return nil, ErrUnsupported
}

// Vendor returns the EGL vendor string.
func (c *Context) Vendor() string { return "" }

// Version returns the EGL version string.
func (c *Context) Version() string { return "" }

// ClientAPIs returns the client APIs supported by the display.
func (c *Context) ClientAPIs() []string { return nil }

// Extensions returns the display extensions.
func (c *Context) Extensions() []string { return nil }

// HasExtension reports whether the display exposes the named extension.
func (c *Context) HasExtension(name string) bool { return false }

// CreateOffscreenSurface implements Core.
func (c *Context) CreateOffscreenSurface(width, height int) (NativeSurface, error) {
	return NoSurface, ErrUnsupported
}

// CreateWindowSurface implements Core.
func (c *Context) CreateWindowSurface(win NativeWindow) (NativeSurface, error) {
	return NoSurface, ErrUnsupported
}

// QuerySurface implements Core.
func (c *Context) QuerySurface(s NativeSurface, attr SurfaceAttrib) (int, error) {
	return 0, ErrUnsupported
}

// ReleaseSurface implements Core.
func (c *Context) ReleaseSurface(s NativeSurface) error { return ErrUnsupported }

// MakeCurrent implements Core.
func (c *Context) MakeCurrent(s NativeSurface) error { return ErrUnsupported }

// MakeCurrentReadFrom implements Core.
func (c *Context) MakeCurrentReadFrom(draw, read NativeSurface) error { return ErrUnsupported }

// MakeNothingCurrent implements Core.
func (c *Context) MakeNothingCurrent() error { return ErrUnsupported }

// IsCurrent implements Core.
func (c *Context) IsCurrent(s NativeSurface) bool { return false }

// SwapBuffers implements Core.
func (c *Context) SwapBuffers(s NativeSurface) error { return ErrUnsupported }

// SetPresentationTime implements Core.
func (c *Context) SetPresentationTime(s NativeSurface, t time.Duration) error {
	return ErrUnsupported
}

// ReadPixels implements Core.
func (c *Context) ReadPixels(dst []byte, width, height int) error { return ErrUnsupported }

// Clear clears the currently bound framebuffer to a solid color.
func (c *Context) Clear(r, g, b, a float32) error { return ErrUnsupported }

// Release unbinds the calling thread and destroys the native context.
func (c *Context) Release() {}
