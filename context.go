//go:build (linux || freebsd) && cgo

package egl

import (
	"fmt"
	"strings"
	"time"

	"github.com/gogpu/egl/internal/eglapi"
)

// Context is the real Core implementation over libEGL.
//
// A Context owns an EGL display connection, a frame buffer
// configuration and a GLES rendering context. Surfaces created through
// it share that context; see Core for the threading contract.
//
// Release must be called on every exit path; nothing releases the
// native context automatically.
type Context struct {
	disp eglapi.Display
	cfg  eglapi.Config
	ctx  eglapi.Context

	// presentationTime records whether eglPresentationTimeANDROID
	// resolved at creation.
	presentationTime bool
}

var _ Core = (*Context)(nil)

// NewContext opens the EGL display, chooses an RGBA8888 config
// renderable by GLES, and creates a rendering context.
func NewContext(opts ...ContextOption) (*Context, error) {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	disp, err := eglapi.GetDisplay(uintptr(o.display))
	if err != nil {
		return nil, fmt.Errorf("egl: initialize display: %w", err)
	}
	if err := eglapi.BindAPI(); err != nil {
		eglapi.Terminate(disp)
		return nil, fmt.Errorf("egl: bind ES API: %w", err)
	}
	cfg, err := eglapi.ChooseConfig(disp, o.es3)
	if err != nil {
		eglapi.Terminate(disp)
		return nil, fmt.Errorf("egl: choose config: %w", err)
	}

	share := eglapi.NoContext
	if o.shared != nil {
		share = o.shared.ctx
	}
	version := 2
	if o.es3 {
		version = 3
	}
	ctx, err := eglapi.CreateContext(disp, cfg, share, version)
	if err != nil {
		eglapi.Terminate(disp)
		return nil, fmt.Errorf("egl: create context: %w", err)
	}

	c := &Context{
		disp:             disp,
		cfg:              cfg,
		ctx:              ctx,
		presentationTime: eglapi.LoadPresentationTime(),
	}
	Logger().Info("egl: context created",
		"vendor", c.Vendor(),
		"version", c.Version(),
		"gles", version,
		"presentationTime", c.presentationTime)
	return c, nil
}

// Vendor returns the EGL vendor string.
func (c *Context) Vendor() string {
	return eglapi.QueryString(c.disp, eglapi.Vendor)
}

// Version returns the EGL version string.
func (c *Context) Version() string {
	return eglapi.QueryString(c.disp, eglapi.Version)
}

// ClientAPIs returns the client APIs supported by the display.
func (c *Context) ClientAPIs() []string {
	return splitWords(eglapi.QueryString(c.disp, eglapi.ClientAPIs))
}

// Extensions returns the display extensions.
func (c *Context) Extensions() []string {
	return splitWords(eglapi.QueryString(c.disp, eglapi.Extensions))
}

// HasExtension reports whether the display exposes the named extension.
func (c *Context) HasExtension(name string) bool {
	for _, ext := range c.Extensions() {
		if ext == name {
			return true
		}
	}
	return false
}

func splitWords(s string) []string {
	return strings.Fields(s)
}

// CreateOffscreenSurface implements Core.
func (c *Context) CreateOffscreenSurface(width, height int) (NativeSurface, error) {
	surf, err := eglapi.CreatePbufferSurface(c.disp, c.cfg, width, height)
	if err != nil {
		return NoSurface, err
	}
	Logger().Debug("egl: pbuffer surface created", "surface", surf, "width", width, "height", height)
	return NativeSurface(surf), nil
}

// CreateWindowSurface implements Core.
func (c *Context) CreateWindowSurface(win NativeWindow) (NativeSurface, error) {
	surf, err := eglapi.CreateWindowSurface(c.disp, c.cfg, uintptr(win))
	if err != nil {
		return NoSurface, err
	}
	Logger().Debug("egl: window surface created", "surface", surf, "window", win)
	return NativeSurface(surf), nil
}

// QuerySurface implements Core.
func (c *Context) QuerySurface(s NativeSurface, attr SurfaceAttrib) (int, error) {
	return eglapi.QuerySurface(c.disp, eglapi.Surface(s), int(attr))
}

// ReleaseSurface implements Core. Releasing NoSurface is a no-op.
func (c *Context) ReleaseSurface(s NativeSurface) error {
	if !s.IsValid() {
		return nil
	}
	return eglapi.DestroySurface(c.disp, eglapi.Surface(s))
}

// MakeCurrent implements Core.
func (c *Context) MakeCurrent(s NativeSurface) error {
	return eglapi.MakeCurrent(c.disp, eglapi.Surface(s), eglapi.Surface(s), c.ctx)
}

// MakeCurrentReadFrom implements Core.
func (c *Context) MakeCurrentReadFrom(draw, read NativeSurface) error {
	return eglapi.MakeCurrent(c.disp, eglapi.Surface(draw), eglapi.Surface(read), c.ctx)
}

// MakeNothingCurrent implements Core.
func (c *Context) MakeNothingCurrent() error {
	return eglapi.MakeCurrent(c.disp, eglapi.NoSurface, eglapi.NoSurface, eglapi.NoContext)
}

// IsCurrent implements Core: true iff this context is current on the
// calling thread with s as its draw surface.
func (c *Context) IsCurrent(s NativeSurface) bool {
	return eglapi.GetCurrentContext() == c.ctx &&
		eglapi.GetCurrentDrawSurface() == eglapi.Surface(s)
}

// SwapBuffers implements Core.
func (c *Context) SwapBuffers(s NativeSurface) error {
	return eglapi.SwapBuffers(c.disp, eglapi.Surface(s))
}

// SetPresentationTime implements Core. Returns ErrNoExtension when the
// display does not expose eglPresentationTimeANDROID.
func (c *Context) SetPresentationTime(s NativeSurface, t time.Duration) error {
	if !c.presentationTime {
		return ErrNoExtension
	}
	return eglapi.PresentationTime(c.disp, eglapi.Surface(s), t.Nanoseconds())
}

// ReadPixels implements Core.
func (c *Context) ReadPixels(dst []byte, width, height int) error {
	return eglapi.ReadPixels(dst, width, height)
}

// Clear clears the currently bound framebuffer to a solid color. A
// convenience for smoke tests and examples.
func (c *Context) Clear(r, g, b, a float32) error {
	return eglapi.Clear(r, g, b, a)
}

// Release unbinds the calling thread, destroys the rendering context
// and terminates the display connection. The context must not be used
// afterwards. Safe to call more than once.
func (c *Context) Release() {
	if c.disp == eglapi.NoDisplay {
		return
	}
	if err := c.MakeNothingCurrent(); err != nil {
		Logger().Warn("egl: unbind on release failed", "err", err)
	}
	eglapi.DestroyContext(c.disp, c.ctx)
	eglapi.ReleaseThread()
	eglapi.Terminate(c.disp)
	c.disp = eglapi.NoDisplay
	c.ctx = eglapi.NoContext
	Logger().Info("egl: context released")
}
