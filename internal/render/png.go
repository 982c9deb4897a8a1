package render

import (
	"image"
	"image/png"
	"io"
)

// EncodePNG writes img as a losslessly compressed PNG. Output is
// deterministic for a given image.
func EncodePNG(w io.Writer, img image.Image) error {
	encoder := png.Encoder{CompressionLevel: PNGCompression}
	return encoder.Encode(w, img)
}
