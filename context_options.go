package egl

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default display, GLES 2 context
//	core, err := egl.NewContext()
//
//	// Share textures with an existing context
//	worker, err := egl.NewContext(egl.WithSharedContext(core))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	display NativeDisplay
	shared  *Context
	es3     bool
}

// defaultContextOptions returns the default context options: the default
// display, no sharing, a GLES 2 context.
func defaultContextOptions() contextOptions {
	return contextOptions{}
}

// WithNativeDisplay selects the native display connection to open the
// EGL display on. The default is EGL_DEFAULT_DISPLAY.
func WithNativeDisplay(d NativeDisplay) ContextOption {
	return func(o *contextOptions) {
		o.display = d
	}
}

// WithSharedContext makes the new context share GL objects (textures,
// buffers) with an existing one. Used by pipelines that render on one
// thread and encode on another.
func WithSharedContext(c *Context) ContextOption {
	return func(o *contextOptions) {
		o.shared = c
	}
}

// WithGLES3 requests a GLES 3 context instead of the default GLES 2.
// Creation fails if the driver offers no GLES 3 renderable config.
func WithGLES3() ContextOption {
	return func(o *contextOptions) {
		o.es3 = true
	}
}
