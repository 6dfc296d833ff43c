package heightmap

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

// testSample gives each pixel a distinct, deterministic height.
func testSample(x, y, w int) uint16 {
	return uint16((y*w + x) % 65536)
}

func testGray16(w, h int) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray16(x, y, color.Gray16{Y: testSample(x, y, w)})
		}
	}
	return img
}

// writeTestPNG writes a 16-bit grayscale PNG fixture and returns its path.
func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "heightmap.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, testGray16(w, h)); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return path
}

func TestDecode_PNG16(t *testing.T) {
	path := writeTestPNG(t, 4, 3)

	src, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if src.Width != 4 || src.Height != 3 {
		t.Errorf("expected 4x3, got %dx%d", src.Width, src.Height)
	}
	if src.BitDepth != 16 {
		t.Errorf("expected bit depth 16, got %d", src.BitDepth)
	}
	if src.Format != "png" {
		t.Errorf("expected format png, got %s", src.Format)
	}
	if len(src.Samples) != 12 {
		t.Fatalf("expected 12 samples, got %d", len(src.Samples))
	}

	// Row-major order, row 0 first.
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := src.Samples[y*4+x]; got != testSample(x, y, 4) {
				t.Errorf("sample (%d,%d): expected %d, got %d", x, y, testSample(x, y, 4), got)
			}
		}
	}
}

func TestDecode_TIFF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heightmap.tif")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	if err := tiff.Encode(f, testGray16(8, 8), nil); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	f.Close()

	src, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if src.Format != "tiff" {
		t.Errorf("expected format tiff, got %s", src.Format)
	}
	if src.Width != 8 || src.Height != 8 {
		t.Errorf("expected 8x8, got %dx%d", src.Width, src.Height)
	}
	if got := src.Samples[3*8+5]; got != testSample(5, 3, 8) {
		t.Errorf("sample (5,3): expected %d, got %d", testSample(5, 3, 8), got)
	}
}

func TestDecode_Gray8Widens(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 0x80})
	img.SetGray(1, 1, color.Gray{Y: 0xFF})

	path := filepath.Join(t.TempDir(), "gray8.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	f.Close()

	src, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// 8-bit values replicate into the high and low byte.
	if src.Samples[0] != 0x8080 {
		t.Errorf("expected 0x8080, got 0x%04X", src.Samples[0])
	}
	if src.Samples[3] != 0xFFFF {
		t.Errorf("expected 0xFFFF, got 0x%04X", src.Samples[3])
	}
	if src.Samples[1] != 0 {
		t.Errorf("expected 0, got 0x%04X", src.Samples[1])
	}
}

func TestDecode_MissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrFileRead) {
		t.Errorf("expected ErrFileRead, got %v", err)
	}
}

func TestDecode_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Decode(path)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestFromImage_EmptyBounds(t *testing.T) {
	_, err := fromImage(image.NewGray16(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrPixelFormat) {
		t.Errorf("expected ErrPixelFormat, got %v", err)
	}
}
