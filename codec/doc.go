// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package codec encodes framebuffer images into container formats.
//
// The package maintains a registry of named encoders. Built-in formats
// are png and jpeg (standard library) plus bmp and tiff
// (golang.org/x/image). Third-party containers can be added:
//
//	codec.Register("webp", myWebPEncoder)
//
//	// Later:
//	err := codec.Encode(w, img, "webp", 90)
//
// Format names are case-insensitive; "PNG" and "png" select the same
// encoder.
//
// # Orientation
//
// GL framebuffer readback delivers rows bottom to top. The encoders in
// this package write the image exactly as given; use FlipVertical on a
// decoded image to obtain right-side-up pixels.
package codec
