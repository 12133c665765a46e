// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package codec

import (
	"image"
	"io"
	"sort"
	"strings"
	"sync"
)

// Built-in format names.
const (
	// FormatPNG is the lossless PNG container (standard library).
	FormatPNG = "png"

	// FormatJPEG is the lossy JPEG container (standard library).
	// The quality parameter is honored (1-100).
	FormatJPEG = "jpeg"

	// FormatBMP is the uncompressed BMP container (golang.org/x/image).
	FormatBMP = "bmp"

	// FormatTIFF is the TIFF container with deflate compression
	// (golang.org/x/image).
	FormatTIFF = "tiff"
)

// Encoder writes an image to a stream in one container format.
//
// quality is the encoder quality for lossy formats (1-100); lossless
// encoders ignore it. Implementations must not retain img or w.
type Encoder interface {
	Encode(w io.Writer, img image.Image, quality int) error
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(w io.Writer, img image.Image, quality int) error

// Encode implements Encoder.
func (f EncoderFunc) Encode(w io.Writer, img image.Image, quality int) error {
	return f(w, img, quality)
}

// registry maps lower-cased format names to encoders.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Encoder)
)

// Register adds an encoder to the registry under the given format name.
// Names are case-insensitive. Registering a name that already exists
// replaces the previous encoder.
func Register(format string, enc Encoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(format)] = enc
}

// Unregister removes a format from the registry.
func Unregister(format string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, strings.ToLower(format))
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the encoder registered for the format, if any.
func Lookup(format string) (Encoder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	enc, ok := registry[strings.ToLower(format)]
	return enc, ok
}

// Encode writes img to w in the named container format.
// Returns an UnknownFormatError if the format is not registered.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	enc, ok := Lookup(format)
	if !ok {
		return &UnknownFormatError{Format: format}
	}
	return enc.Encode(w, img, quality)
}

// UnknownFormatError indicates a format name with no registered encoder.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return "codec: unknown format: " + e.Format
}
