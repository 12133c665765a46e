// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package codec

import (
	"image"

	"github.com/disintegration/imaging"
)

// FlipVertical returns img mirrored around its horizontal axis.
//
// Framebuffer exports store rows bottom to top; decoding an exported
// file and passing it through FlipVertical yields right-side-up pixels.
// The source image is not modified.
func FlipVertical(img image.Image) *image.NRGBA {
	return imaging.FlipV(img)
}
