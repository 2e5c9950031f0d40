package render

import (
	"image"
	"image/png"
	"io"
)

// SavePNG encodes img as PNG to w. Plain stdlib image/png: none of the
// donor's graphics dependencies (draw2d, x/image) offer an encoder of
// their own, they all bottom out on this package.
func SavePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
