// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package codec

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// init registers the built-in encoders.
func init() {
	Register(FormatPNG, EncoderFunc(encodePNG))
	Register(FormatJPEG, EncoderFunc(encodeJPEG))
	Register(FormatBMP, EncoderFunc(encodeBMP))
	Register(FormatTIFF, EncoderFunc(encodeTIFF))
}

func encodePNG(w io.Writer, img image.Image, _ int) error {
	return png.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

func encodeBMP(w io.Writer, img image.Image, _ int) error {
	return bmp.Encode(w, img)
}

func encodeTIFF(w io.Writer, img image.Image, _ int) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}
