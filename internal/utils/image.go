package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultMaxImagePixels is the decoded size limit applied when the caller
// passes no positive limit: 40 megapixels.
const DefaultMaxImagePixels int64 = 40_000_000

// ErrImageTooLarge is returned when the header of an image declares more
// pixels than allowed. A compressed file far below the upload size limit can
// still declare a canvas that needs gigabytes once decoded.
var ErrImageTooLarge = errors.New("image dimensions exceed the allowed pixel count")

// ResizeImage decodes a PNG or JPEG image, scales it to exactly width x height
// (the aspect ratio is not preserved) and encodes it back in the format named
// by ext ("png", "jpg" or "jpeg").
//
// The dimensions are read from the image header first; images above
// maxPixels are rejected with ErrImageTooLarge before any pixel is decoded.
func ResizeImage(content []byte, ext string, width, height int, maxPixels int64) ([]byte, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxImagePixels
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error decoding image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d, limit is %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var out bytes.Buffer
	switch ext {
	case "png":
		err = png.Encode(&out, dst)
	case "jpg", "jpeg":
		err = jpeg.Encode(&out, dst, &jpeg.Options{Quality: 90})
	default:
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error encoding image: %w", err)
	}

	return out.Bytes(), nil
}
