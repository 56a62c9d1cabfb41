package utils

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodedPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestResizeImage_PNG(t *testing.T) {
	resized, err := ResizeImage(encodedPNG(t, 640, 320), "png", 200, 200, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("result is not a png: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 200 {
		t.Errorf("expected 200x200, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestResizeImage_JPEGFromPNGInput(t *testing.T) {
	resized, err := ResizeImage(encodedPNG(t, 50, 80), "jpg", 200, 200, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(resized))
	if err != nil {
		t.Fatalf("result is not a jpeg: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 200 {
		t.Errorf("expected 200x200, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestResizeImage_Errors(t *testing.T) {
	if _, err := ResizeImage([]byte("definitely not an image"), "png", 200, 200, 0); err == nil {
		t.Error("expected decode error")
	}
	if _, err := ResizeImage(encodedPNG(t, 10, 10), "gif", 200, 200, 0); err == nil {
		t.Error("expected unsupported format error")
	}
}

// pngWithDeclaredSize returns a tiny PNG whose header claims w x h pixels.
// The pixel data is that of a 1x1 image, so only the header can be trusted.
func pngWithDeclaredSize(t *testing.T, w, h uint32) []byte {
	t.Helper()

	content := encodedPNG(t, 1, 1)
	// 8 byte signature, 4 byte length, "IHDR", then width and height
	binary.BigEndian.PutUint32(content[16:20], w)
	binary.BigEndian.PutUint32(content[20:24], h)
	// the chunk CRC covers the type and the 13 data bytes
	binary.BigEndian.PutUint32(content[29:33], crc32.ChecksumIEEE(content[12:29]))
	return content
}

func TestResizeImage_RejectsHugeDeclaredCanvas(t *testing.T) {
	content := pngWithDeclaredSize(t, 50_000, 50_000)
	if len(content) > 1024 {
		t.Fatalf("forged image should stay tiny, got %d bytes", len(content))
	}

	_, err := ResizeImage(content, "png", 200, 200, 0)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}

func TestResizeImage_PixelLimitBoundary(t *testing.T) {
	if _, err := ResizeImage(encodedPNG(t, 10, 10), "png", 200, 200, 100); err != nil {
		t.Errorf("image at the limit must pass, got %v", err)
	}

	_, err := ResizeImage(encodedPNG(t, 10, 11), "png", 200, 200, 100)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("expected ErrImageTooLarge above the limit, got %v", err)
	}
}
