package egl

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gogpu/egl/codec"
)

// defaultQuality is the documented encoder quality default.
const defaultQuality = 90

// ExportOptions configures framebuffer export.
//
// Unset fields take the documented defaults; pass nil to the export
// methods to use defaults for everything, or start from
// DefaultExportOptions.
type ExportOptions struct {
	// Format is the container format name, resolved through the codec
	// registry. Default: codec.FormatPNG.
	Format string

	// Quality is the encoder quality for lossy formats (1-100).
	// Lossless encoders ignore it. Default: 90.
	Quality int
}

// DefaultExportOptions returns ExportOptions with default values:
// PNG container, quality 90.
func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		Format:  codec.FormatPNG,
		Quality: defaultQuality,
	}
}

// Encode reads the surface's full framebuffer and writes it to w in the
// requested container format.
//
// The surface must be the calling thread's current draw surface;
// otherwise Encode returns ErrNotCurrent without writing to w.
//
// Readback is width*height RGBA at 4 bytes per pixel, with rows ordered
// bottom to top relative to the container's top-down storage. Encode
// does not flip; callers needing right-side-up output must flip the
// decoded image themselves (see codec.FlipVertical).
func (s *Surface) Encode(w io.Writer, opts *ExportOptions) error {
	if opts == nil {
		opts = DefaultExportOptions()
	}
	format := opts.Format
	if format == "" {
		format = codec.FormatPNG
	}
	quality := opts.Quality
	if quality == 0 {
		quality = defaultQuality
	}
	if !s.IsCurrent() {
		return ErrNotCurrent
	}

	width, height := s.Width(), s.Height()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("egl: cannot export %dx%d surface", width, height)
	}

	buf := make([]byte, width*height*4)
	if err := s.core.ReadPixels(buf, width, height); err != nil {
		return fmt.Errorf("egl: read pixels: %w", err)
	}

	img := &image.RGBA{
		Pix:    buf,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return codec.Encode(w, img, format, quality)
}

// Save exports the framebuffer to a file at path, writing through a
// buffered stream.
//
// The surface must be current; otherwise Save returns ErrNotCurrent and
// the file is not created. The stream is closed on every exit path; an
// encode error takes precedence over a close error.
func (s *Surface) Save(path string, opts *ExportOptions) error {
	if !s.IsCurrent() {
		return ErrNotCurrent
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	return s.saveTo(f, opts)
}

// saveTo encodes through a buffered writer and closes wc exactly once
// on every exit path. An encode error takes precedence over a close
// error.
func (s *Surface) saveTo(wc io.WriteCloser, opts *ExportOptions) error {
	bw := bufio.NewWriter(wc)
	err := s.Encode(bw, opts)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	return err
}

// EncodeBytes exports the framebuffer into memory and returns the
// encoded container bytes. The surface must be current.
func (s *Surface) EncodeBytes(opts *ExportOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
