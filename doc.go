// Package egl manages EGL rendering surfaces and exports their pixel
// contents to image files.
//
// # Overview
//
// egl wraps the EGL surface API behind a small, explicit Go API. It
// provides a Surface handle over a native EGL surface (offscreen pbuffer
// or window-backed), thread binding via MakeCurrent, presentation
// timestamps for compositor frame pacing, and framebuffer export through
// a pluggable image codec registry.
//
// # Quick Start
//
//	import "github.com/gogpu/egl"
//
//	// Create an EGL context on the default display.
//	core, err := egl.NewContext()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer core.Release()
//
//	// Allocate a fixed-size offscreen surface.
//	s, err := egl.NewOffscreen(core, 512, 512)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Release()
//
//	// Bind it on this thread, draw, then export.
//	if err := s.MakeCurrent(); err != nil {
//		log.Fatal(err)
//	}
//	// ... issue GL commands ...
//	if err := s.Save("frame.png", nil); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Core, Context, Surface, ExportOptions
//   - codec: image container encoders (png, jpeg, bmp, tiff) with a
//     registry for third-party formats
//   - internal/eglapi: the libEGL/libGLESv2 binding layer
//
// Core is the collaborator interface consumed by Surface; Context is the
// real implementation over libEGL. Tests substitute their own Core.
//
// # Threading
//
// EGL follows a one-thread-per-current-context model: a surface/context
// pair is current on at most one thread, and all draw, read and export
// operations on a surface must happen on the thread that made it current.
// This package performs no internal locking and does not check that
// discipline; it is the caller's responsibility. Every method is a
// direct, synchronous call into the driver or the codec.
//
// # Pixel Orientation
//
// Framebuffer readback follows GL conventions: rows are ordered bottom to
// top relative to top-down image storage. Export never flips; callers
// that need right-side-up output should apply codec.FlipVertical to the
// decoded image themselves.
package egl

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
