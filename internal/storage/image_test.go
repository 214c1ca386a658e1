package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func pngFixture(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return &buf
}

func TestEncodeWebP_SmallImageKeepsSize(t *testing.T) {
	data, err := EncodeWebP(pngFixture(t, 320, 200))
	if err != nil {
		t.Fatalf("EncodeWebP: %v", err)
	}

	decoded, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("webp.Decode: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("bounds = %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncodeWebP_DownscalesLargeImage(t *testing.T) {
	data, err := EncodeWebP(pngFixture(t, 2048, 1024))
	if err != nil {
		t.Fatalf("EncodeWebP: %v", err)
	}

	decoded, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("webp.Decode: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 1024 || b.Dy() != 512 {
		t.Fatalf("bounds = %dx%d, want 1024x512", b.Dx(), b.Dy())
	}
}

func TestEncodeWebP_RejectsGarbage(t *testing.T) {
	if _, err := EncodeWebP(bytes.NewReader([]byte("não é imagem"))); err == nil {
		t.Fatal("expected decode error")
	}
}
