// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"slices"
	"testing"

	"github.com/h2non/filetype"
)

// testImage returns a small opaque RGBA image with row-dependent pixels.
func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetRGBA(x, y, color.RGBA{R: byte(x), G: byte(y), B: 3, A: 0xff})
		}
	}
	return img
}

// TestBuiltinFormats verifies each built-in encoder produces bytes the
// container sniffer recognizes.
func TestBuiltinFormats(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
	}{
		{format: FormatPNG, wantExt: "png"},
		{format: FormatJPEG, wantExt: "jpg"},
		{format: FormatBMP, wantExt: "bmp"},
		{format: FormatTIFF, wantExt: "tif"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testImage(16, 8), tt.format, 90); err != nil {
				t.Fatalf("Encode(%s) = %v", tt.format, err)
			}
			if buf.Len() == 0 {
				t.Fatalf("Encode(%s) wrote nothing", tt.format)
			}

			kind, err := filetype.Match(buf.Bytes())
			if err != nil {
				t.Fatalf("sniff %s bytes: %v", tt.format, err)
			}
			if kind.Extension != tt.wantExt {
				t.Errorf("sniffed container = %q, want %q", kind.Extension, tt.wantExt)
			}
		})
	}
}

// TestFormatNameCaseInsensitive verifies "PNG" and "png" select the
// same encoder.
func TestFormatNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"PNG", "Png", "png"} {
		var buf bytes.Buffer
		if err := Encode(&buf, testImage(4, 4), name, 90); err != nil {
			t.Errorf("Encode(%q) = %v", name, err)
		}
	}
}

// TestUnknownFormat verifies the typed lookup error.
func TestUnknownFormat(t *testing.T) {
	err := Encode(io.Discard, testImage(4, 4), "xpm", 90)

	var ufe *UnknownFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("Encode(xpm) = %v, want UnknownFormatError", err)
	}
	if ufe.Format != "xpm" {
		t.Errorf("UnknownFormatError.Format = %q, want xpm", ufe.Format)
	}
}

// TestRegisterReplaceUnregister exercises the registry lifecycle.
func TestRegisterReplaceUnregister(t *testing.T) {
	calls := 0
	Register("custom", EncoderFunc(func(io.Writer, image.Image, int) error {
		calls++
		return nil
	}))
	t.Cleanup(func() { Unregister("custom") })

	if err := Encode(io.Discard, testImage(2, 2), "CUSTOM", 1); err != nil {
		t.Fatalf("Encode(custom) = %v", err)
	}
	if calls != 1 {
		t.Errorf("custom encoder ran %d times, want 1", calls)
	}

	// Re-registering replaces the previous encoder.
	Register("custom", EncoderFunc(func(io.Writer, image.Image, int) error {
		return errors.New("replaced")
	}))
	if err := Encode(io.Discard, testImage(2, 2), "custom", 1); err == nil {
		t.Error("replaced encoder should have run")
	}
	if calls != 1 {
		t.Errorf("old encoder ran again after replacement, calls = %d", calls)
	}

	Unregister("custom")
	if _, ok := Lookup("custom"); ok {
		t.Error("encoder still registered after Unregister")
	}
}

// TestFormats verifies the built-ins are listed.
func TestFormats(t *testing.T) {
	names := Formats()
	for _, want := range []string{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF} {
		if !slices.Contains(names, want) {
			t.Errorf("Formats() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Formats() = %v, want sorted", names)
	}
}

// TestJPEGQualityBounds verifies out-of-range quality falls back to the
// encoder default instead of failing.
func TestJPEGQualityBounds(t *testing.T) {
	for _, quality := range []int{-1, 0, 101} {
		var buf bytes.Buffer
		if err := Encode(&buf, testImage(8, 8), FormatJPEG, quality); err != nil {
			t.Errorf("Encode(jpeg, quality=%d) = %v", quality, err)
		}
	}
}

// TestJPEGQualityAffectsSize sanity-checks that the quality parameter
// reaches the encoder.
func TestJPEGQualityAffectsSize(t *testing.T) {
	img := testImage(64, 64)

	var low, high bytes.Buffer
	if err := Encode(&low, img, FormatJPEG, 5); err != nil {
		t.Fatalf("Encode(jpeg, 5) = %v", err)
	}
	if err := Encode(&high, img, FormatJPEG, 100); err != nil {
		t.Fatalf("Encode(jpeg, 100) = %v", err)
	}
	if low.Len() >= high.Len() {
		t.Errorf("quality 5 output (%d bytes) not smaller than quality 100 (%d bytes)",
			low.Len(), high.Len())
	}
}
