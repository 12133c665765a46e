// Command eglinfo prints EGL display characteristics.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/gogpu/egl"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "enable debug logging")
		es3     = flag.Bool("es3", false, "request a GLES 3 context")
	)
	flag.Parse()

	if *verbose {
		egl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// EGL contexts are bound per OS thread.
	runtime.LockOSThread()

	var opts []egl.ContextOption
	if *es3 {
		opts = append(opts, egl.WithGLES3())
	}
	core, err := egl.NewContext(opts...)
	if err != nil {
		log.Fatalf("Failed to create EGL context: %v", err)
	}
	defer core.Release()

	fmt.Printf("Vendor:      %s\n", core.Vendor())
	fmt.Printf("Version:     %s\n", core.Version())
	fmt.Printf("Client APIs: %s\n", strings.Join(core.ClientAPIs(), " "))
	fmt.Println("Extensions:")
	for _, ext := range core.Extensions() {
		fmt.Printf("  %s\n", ext)
	}
}
