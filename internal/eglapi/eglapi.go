// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build (linux || freebsd) && cgo

// Package eglapi binds libEGL and libGLESv2.
//
// The package exposes thin wrappers over the EGL entry points used by
// the egl package: display and context lifecycle, surface creation,
// thread binding, buffer swaps, presentation timestamps and framebuffer
// readback. Handles are carried as uintptr so that callers stay free of
// cgo types.
package eglapi

/*
#cgo CFLAGS: -DEGL_NO_X11 -DMESA_EGL_NO_X11_HEADERS
#cgo LDFLAGS: -lEGL -lGLESv2
#include <EGL/egl.h>
#include <GLES2/gl2.h>

typedef EGLBoolean (*pfn_presentation_time)(EGLDisplay, EGLSurface, long long);

static pfn_presentation_time fn_presentation_time;

static int egl_load_presentation_time(void) {
	fn_presentation_time = (pfn_presentation_time)eglGetProcAddress("eglPresentationTimeANDROID");
	return fn_presentation_time != NULL;
}

static EGLBoolean egl_presentation_time(EGLDisplay dpy, EGLSurface surf, long long nsecs) {
	return fn_presentation_time(dpy, surf, nsecs);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Opaque EGL handles.
type (
	Display uintptr
	Config  uintptr
	Context uintptr
	Surface uintptr
)

// Null handles.
const (
	NoDisplay Display = 0
	NoContext Context = 0
	NoSurface Surface = 0
)

// EGL_OPENGL_ES3_BIT is an EGL 1.5 constant missing from older headers.
const glES3Bit = 0x0040

// Error is an EGL error code reported by eglGetError.
type Error uint32

// errDesc is the standard description table for EGL error codes.
var errDesc = map[Error]string{
	C.EGL_NOT_INITIALIZED:     "EGL is not initialized, or could not be initialized, for the specified display",
	C.EGL_BAD_ACCESS:          "EGL cannot access a requested resource (for example a context is bound in another thread)",
	C.EGL_BAD_ALLOC:           "EGL failed to allocate resources for the requested operation",
	C.EGL_BAD_ATTRIBUTE:       "an unrecognized attribute or attribute value was passed in the attribute list",
	C.EGL_BAD_CONTEXT:         "an EGLContext argument does not name a valid rendering context",
	C.EGL_BAD_CONFIG:          "an EGLConfig argument does not name a valid frame buffer configuration",
	C.EGL_BAD_CURRENT_SURFACE: "the current surface of the calling thread is no longer valid",
	C.EGL_BAD_DISPLAY:         "an EGLDisplay argument does not name a valid display connection",
	C.EGL_BAD_SURFACE:         "an EGLSurface argument does not name a valid surface configured for rendering",
	C.EGL_BAD_MATCH:           "arguments are inconsistent",
	C.EGL_BAD_PARAMETER:       "one or more argument values are invalid",
	C.EGL_BAD_NATIVE_PIXMAP:   "a NativePixmapType argument does not refer to a valid native pixmap",
	C.EGL_BAD_NATIVE_WINDOW:   "a NativeWindowType argument does not refer to a valid native window",
	C.EGL_CONTEXT_LOST:        "a power management event occurred; all contexts must be recreated",
}

func (e Error) Error() string {
	if desc, ok := errDesc[e]; ok {
		return fmt.Sprintf("egl: %s (0x%04x)", desc, uint32(e))
	}
	return fmt.Sprintf("egl: error 0x%04x", uint32(e))
}

// lastError returns the thread's last EGL error as an Error, or a
// generic error if the driver reports success despite a failed call.
func lastError() error {
	code := Error(C.eglGetError())
	if code == C.EGL_SUCCESS {
		return fmt.Errorf("egl: call failed without error code")
	}
	return code
}

// GetDisplay obtains and initializes the EGL display for a native
// display handle. Zero selects EGL_DEFAULT_DISPLAY.
func GetDisplay(native uintptr) (Display, error) {
	dpy := C.eglGetDisplay(C.EGLNativeDisplayType(unsafe.Pointer(native)))
	// cgo represents EGLDisplay as uintptr, not a pointer type, because
	// EGL handles may hold non-pointer values.
	if dpy == 0 {
		return NoDisplay, fmt.Errorf("egl: no display for native handle %#x", native)
	}
	if C.eglInitialize(dpy, nil, nil) == C.EGL_FALSE {
		return NoDisplay, lastError()
	}
	return Display(uintptr(unsafe.Pointer(dpy))), nil
}

// Terminate releases the display connection.
func Terminate(d Display) {
	C.eglTerminate(dpyHandle(d))
}

// QueryString names for QueryString.
const (
	Vendor     = C.EGL_VENDOR
	Version    = C.EGL_VERSION
	ClientAPIs = C.EGL_CLIENT_APIS
	Extensions = C.EGL_EXTENSIONS
)

// QueryString returns a display characteristic string (Vendor, Version,
// ClientAPIs or Extensions).
func QueryString(d Display, name int) string {
	return C.GoString(C.eglQueryString(dpyHandle(d), C.EGLint(name)))
}

// BindAPI binds the OpenGL ES API for the calling thread.
func BindAPI() error {
	if C.eglBindAPI(C.EGL_OPENGL_ES_API) == C.EGL_FALSE {
		return lastError()
	}
	return nil
}

// ChooseConfig selects an RGBA8888 config renderable by GLES 2 (or 3)
// that supports both window and pbuffer surfaces.
func ChooseConfig(d Display, es3 bool) (Config, error) {
	renderable := C.EGLint(C.EGL_OPENGL_ES2_BIT)
	if es3 {
		renderable = glES3Bit
	}
	attribs := []C.EGLint{
		C.EGL_RED_SIZE, 8,
		C.EGL_GREEN_SIZE, 8,
		C.EGL_BLUE_SIZE, 8,
		C.EGL_ALPHA_SIZE, 8,
		C.EGL_RENDERABLE_TYPE, renderable,
		C.EGL_SURFACE_TYPE, C.EGL_WINDOW_BIT | C.EGL_PBUFFER_BIT,
		C.EGL_NONE,
	}
	var (
		cfg        C.EGLConfig
		numConfigs C.EGLint
	)
	if C.eglChooseConfig(dpyHandle(d), &attribs[0], &cfg, 1, &numConfigs) == C.EGL_FALSE {
		return 0, lastError()
	}
	if numConfigs < 1 {
		return 0, fmt.Errorf("egl: no matching config")
	}
	return Config(uintptr(cfg)), nil
}

// CreateContext creates a GLES rendering context, optionally sharing
// objects with an existing context.
func CreateContext(d Display, cfg Config, share Context, version int) (Context, error) {
	attribs := []C.EGLint{
		C.EGL_CONTEXT_CLIENT_VERSION, C.EGLint(version),
		C.EGL_NONE,
	}
	ctx := C.eglCreateContext(dpyHandle(d), cfgHandle(cfg), ctxHandle(share), &attribs[0])
	if ctx == nil {
		return NoContext, lastError()
	}
	return Context(uintptr(unsafe.Pointer(ctx))), nil
}

// DestroyContext destroys a rendering context.
func DestroyContext(d Display, ctx Context) {
	C.eglDestroyContext(dpyHandle(d), ctxHandle(ctx))
}

// ReleaseThread releases EGL resources held by the calling thread.
func ReleaseThread() {
	C.eglReleaseThread()
}

// CreatePbufferSurface allocates an offscreen pbuffer surface.
func CreatePbufferSurface(d Display, cfg Config, width, height int) (Surface, error) {
	attribs := []C.EGLint{
		C.EGL_WIDTH, C.EGLint(width),
		C.EGL_HEIGHT, C.EGLint(height),
		C.EGL_NONE,
	}
	surf := C.eglCreatePbufferSurface(dpyHandle(d), cfgHandle(cfg), &attribs[0])
	if surf == nil {
		return NoSurface, lastError()
	}
	return Surface(uintptr(unsafe.Pointer(surf))), nil
}

// CreateWindowSurface wraps a native window in an EGL window surface.
func CreateWindowSurface(d Display, cfg Config, win uintptr) (Surface, error) {
	// With EGL_NO_X11, EGLNativeWindowType is a khronos_uintptr_t
	// integer, so the handle converts directly.
	surf := C.eglCreateWindowSurface(dpyHandle(d), cfgHandle(cfg),
		C.EGLNativeWindowType(win), nil)
	if surf == nil {
		return NoSurface, lastError()
	}
	return Surface(uintptr(unsafe.Pointer(surf))), nil
}

// DestroySurface destroys a surface.
func DestroySurface(d Display, s Surface) error {
	if C.eglDestroySurface(dpyHandle(d), surfHandle(s)) == C.EGL_FALSE {
		return lastError()
	}
	return nil
}

// MakeCurrent binds draw and read surfaces and a context to the calling
// thread. Pass null handles to unbind.
func MakeCurrent(d Display, draw, read Surface, ctx Context) error {
	if C.eglMakeCurrent(dpyHandle(d), surfHandle(draw), surfHandle(read), ctxHandle(ctx)) == C.EGL_FALSE {
		return lastError()
	}
	return nil
}

// GetCurrentContext returns the calling thread's current context.
func GetCurrentContext() Context {
	return Context(uintptr(unsafe.Pointer(C.eglGetCurrentContext())))
}

// GetCurrentDrawSurface returns the calling thread's current draw
// surface.
func GetCurrentDrawSurface() Surface {
	return Surface(uintptr(unsafe.Pointer(C.eglGetCurrentSurface(C.EGL_DRAW))))
}

// QuerySurface returns the value of a surface attribute.
func QuerySurface(d Display, s Surface, attr int) (int, error) {
	var value C.EGLint
	if C.eglQuerySurface(dpyHandle(d), surfHandle(s), C.EGLint(attr), &value) == C.EGL_FALSE {
		return 0, lastError()
	}
	return int(value), nil
}

// SwapBuffers posts the surface's back buffer.
func SwapBuffers(d Display, s Surface) error {
	if C.eglSwapBuffers(dpyHandle(d), surfHandle(s)) == C.EGL_FALSE {
		return lastError()
	}
	return nil
}

// LoadPresentationTime resolves eglPresentationTimeANDROID through
// eglGetProcAddress and reports whether it is available.
func LoadPresentationTime() bool {
	return C.egl_load_presentation_time() != 0
}

// PresentationTime forwards a presentation timestamp, in nanoseconds,
// for the next frame swapped on the surface. LoadPresentationTime must
// have reported true.
func PresentationTime(d Display, s Surface, nsecs int64) error {
	if C.egl_presentation_time(dpyHandle(d), surfHandle(s), C.longlong(nsecs)) == C.EGL_FALSE {
		return lastError()
	}
	return nil
}

// ReadPixels reads the currently bound framebuffer into dst as RGBA8888.
// dst must hold at least width*height*4 bytes. Rows are ordered bottom
// to top, per GL convention.
func ReadPixels(dst []byte, width, height int) error {
	if need := width * height * 4; len(dst) < need {
		return fmt.Errorf("egl: pixel buffer too small: %d < %d", len(dst), need)
	}
	C.glReadPixels(0, 0, C.GLsizei(width), C.GLsizei(height),
		C.GL_RGBA, C.GL_UNSIGNED_BYTE, unsafe.Pointer(&dst[0]))
	if glErr := C.glGetError(); glErr != C.GL_NO_ERROR {
		return fmt.Errorf("egl: glReadPixels failed: 0x%04x", uint32(glErr))
	}
	return nil
}

// Clear clears the currently bound framebuffer to a solid color. A
// convenience for smoke tests and examples; real rendering belongs to
// the caller's GL code.
func Clear(r, g, b, a float32) error {
	C.glClearColor(C.GLfloat(r), C.GLfloat(g), C.GLfloat(b), C.GLfloat(a))
	C.glClear(C.GL_COLOR_BUFFER_BIT)
	if glErr := C.glGetError(); glErr != C.GL_NO_ERROR {
		return fmt.Errorf("egl: glClear failed: 0x%04x", uint32(glErr))
	}
	return nil
}

func dpyHandle(d Display) C.EGLDisplay  { return C.EGLDisplay(unsafe.Pointer(d)) }
func cfgHandle(c Config) C.EGLConfig    { return C.EGLConfig(unsafe.Pointer(c)) }
func ctxHandle(c Context) C.EGLContext  { return C.EGLContext(unsafe.Pointer(c)) }
func surfHandle(s Surface) C.EGLSurface { return C.EGLSurface(unsafe.Pointer(s)) }
