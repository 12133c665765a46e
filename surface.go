package egl

import (
	"fmt"
	"time"
)

// sizeUnknown marks a dimension that must be queried from the native API.
const sizeUnknown = -1

// Surface is a handle over a native EGL surface.
//
// A Surface holds a reference to a shared Core and exclusively owns its
// native surface handle. The Core is shared: many surfaces may reference
// the same Core, and their lifetimes are independent, but the Core must
// outlive every use of the Surface.
//
// Offscreen surfaces cache their dimensions at construction, since a
// pbuffer's size is fixed. Window surfaces never cache: the underlying
// window can resize out of band, so Width and Height always query the
// driver. Note that for window surfaces a just-changed window size may
// not be visible until after the next buffer swap; that staleness window
// is part of the EGL contract, not a defect of this package.
//
// Release destroys the native surface. The caller must call it on every
// exit path; nothing releases the native resource automatically. After
// Release the handle must not be used for drawing.
type Surface struct {
	core Core
	surf NativeSurface

	// Cached dimensions; sizeUnknown means query the driver.
	width  int
	height int

	// Window-surface release behavior.
	releaseWindow bool
	winReleaser   func()
}

// Source selects the origin of a new Surface. The three variants are
// FixedSize, FromWindow and FromProducer.
type Source interface {
	isSource()
}

// FixedSize creates an offscreen pbuffer surface with the given pixel
// dimensions. The size is fixed at creation and cached on the handle.
type FixedSize struct {
	Width  int
	Height int
}

// FromWindow wraps an existing native window as a window surface.
//
// ReleaseWindow controls whether Surface.Release also releases the
// wrapped window by calling Releaser. It defaults to false so that
// owners which manage the window's lifecycle themselves (a view system,
// a windowing toolkit) are not interfered with.
type FromWindow struct {
	Window NativeWindow

	ReleaseWindow bool

	// Releaser releases the wrapped window object. Only invoked by
	// Surface.Release when ReleaseWindow is true. May be nil.
	Releaser func()
}

// FromProducer wraps a texture-producing surface abstraction as a window
// surface. Frames rendered to the surface are delivered to the producer's
// buffer queue.
type FromProducer struct {
	Producer TextureProducer
}

func (FixedSize) isSource()    {}
func (FromWindow) isSource()   {}
func (FromProducer) isSource() {}

// NewSurface creates a Surface from the given source variant.
//
// Most callers can use the NewOffscreen, NewWindow and
// NewWindowFromProducer convenience constructors instead.
func NewSurface(core Core, src Source) (*Surface, error) {
	switch src := src.(type) {
	case FixedSize:
		if src.Width <= 0 || src.Height <= 0 {
			return nil, fmt.Errorf("egl: invalid offscreen size %dx%d", src.Width, src.Height)
		}
		surf, err := core.CreateOffscreenSurface(src.Width, src.Height)
		if err != nil {
			return nil, fmt.Errorf("egl: create offscreen surface: %w", err)
		}
		return &Surface{
			core:   core,
			surf:   surf,
			width:  src.Width,
			height: src.Height,
		}, nil

	case FromWindow:
		surf, err := core.CreateWindowSurface(src.Window)
		if err != nil {
			return nil, fmt.Errorf("egl: create window surface: %w", err)
		}
		return &Surface{
			core:          core,
			surf:          surf,
			width:         sizeUnknown,
			height:        sizeUnknown,
			releaseWindow: src.ReleaseWindow,
			winReleaser:   src.Releaser,
		}, nil

	case FromProducer:
		if src.Producer == nil {
			return nil, fmt.Errorf("egl: nil texture producer")
		}
		surf, err := core.CreateWindowSurface(src.Producer.NativeWindow())
		if err != nil {
			return nil, fmt.Errorf("egl: create window surface from producer: %w", err)
		}
		return &Surface{
			core:   core,
			surf:   surf,
			width:  sizeUnknown,
			height: sizeUnknown,
		}, nil

	default:
		return nil, fmt.Errorf("egl: unknown surface source %T", src)
	}
}

// NewOffscreen creates a fixed-size offscreen surface.
func NewOffscreen(core Core, width, height int) (*Surface, error) {
	return NewSurface(core, FixedSize{Width: width, Height: height})
}

// NewWindow creates a window surface over an existing native window.
// When releaseWindow is true, Release also invokes releaser to release
// the wrapped window object.
func NewWindow(core Core, win NativeWindow, releaseWindow bool, releaser func()) (*Surface, error) {
	return NewSurface(core, FromWindow{
		Window:        win,
		ReleaseWindow: releaseWindow,
		Releaser:      releaser,
	})
}

// NewWindowFromProducer creates a window surface over a texture producer.
func NewWindowFromProducer(core Core, producer TextureProducer) (*Surface, error) {
	return NewSurface(core, FromProducer{Producer: producer})
}

// NativeSurface returns the underlying native surface handle, or
// NoSurface after Release.
func (s *Surface) NativeSurface() NativeSurface {
	return s.surf
}

// Width returns the surface width in pixels.
//
// Offscreen surfaces return the size cached at construction without
// touching the native API. Window surfaces always query the driver; see
// the Surface documentation for the staleness contract. A failed query
// is logged and reported as 0.
func (s *Surface) Width() int {
	if s.width >= 0 {
		return s.width
	}
	v, err := s.core.QuerySurface(s.surf, AttribWidth)
	if err != nil {
		Logger().Warn("egl: width query failed", "surface", s.surf, "err", err)
		return 0
	}
	return v
}

// Height returns the surface height in pixels. See Width for the caching
// and staleness contract.
func (s *Surface) Height() int {
	if s.height >= 0 {
		return s.height
	}
	v, err := s.core.QuerySurface(s.surf, AttribHeight)
	if err != nil {
		Logger().Warn("egl: height query failed", "surface", s.surf, "err", err)
		return 0
	}
	return v
}

// IsCurrent reports whether this surface is the calling thread's
// currently bound draw surface.
func (s *Surface) IsCurrent() bool {
	return s.surf.IsValid() && s.core.IsCurrent(s.surf)
}

// MakeCurrent binds this surface and its context as both draw and read
// target for the calling thread.
func (s *Surface) MakeCurrent() error {
	if !s.surf.IsValid() {
		return ErrReleased
	}
	return s.core.MakeCurrent(s.surf)
}

// MakeCurrentReadFrom binds this surface as the draw target and read as
// the read target for the calling thread. Used for cross-surface blit
// and copy operations.
func (s *Surface) MakeCurrentReadFrom(read *Surface) error {
	if !s.surf.IsValid() || read == nil || !read.surf.IsValid() {
		return ErrReleased
	}
	return s.core.MakeCurrentReadFrom(s.surf, read.surf)
}

// MakeNothingCurrent unbinds any surface and context from the calling
// thread.
func MakeNothingCurrent(core Core) error {
	return core.MakeNothingCurrent()
}

// SwapBuffers posts the surface's back buffer to its consumer (the
// display, or a texture producer's buffer queue).
func (s *Surface) SwapBuffers() error {
	if !s.surf.IsValid() {
		return ErrReleased
	}
	return s.core.SwapBuffers(s.surf)
}

// SetPresentationTime attaches a presentation timestamp to the next
// frame swapped on this surface. Display compositors use it for frame
// pacing; the value is forwarded to the driver with nanosecond
// resolution.
func (s *Surface) SetPresentationTime(t time.Duration) error {
	if !s.surf.IsValid() {
		return ErrReleased
	}
	return s.core.SetPresentationTime(s.surf, t)
}

// Release destroys the native surface resource and resets the handle to
// NoSurface. Cached dimensions revert to unknown, so subsequent Width
// and Height calls query the driver again (and fail-safe to 0 once the
// surface is gone).
//
// For window surfaces created with ReleaseWindow set, the window
// releaser runs after the native surface is destroyed.
//
// Release is safe to call more than once; second and later calls are
// no-ops.
func (s *Surface) Release() error {
	if !s.surf.IsValid() {
		return nil
	}
	err := s.core.ReleaseSurface(s.surf)
	if err != nil {
		Logger().Warn("egl: release surface failed", "surface", s.surf, "err", err)
	}
	s.surf = NoSurface
	s.width = sizeUnknown
	s.height = sizeUnknown
	if s.releaseWindow && s.winReleaser != nil {
		s.winReleaser()
		s.winReleaser = nil
	}
	return err
}
