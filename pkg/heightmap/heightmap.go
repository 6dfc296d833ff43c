// Package heightmap decodes grayscale height map images into 16-bit
// elevation grids suitable for terrain import.
package heightmap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	// Supported height map containers.
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// Decode errors.
var (
	ErrFileRead    = errors.New("height map file unreadable")
	ErrFormat      = errors.New("not a decodable image container")
	ErrPixelFormat = errors.New("image cannot yield 16-bit grayscale samples")
)

// Source holds a decoded height map image before grid resizing.
// Samples are row-major, row 0 first, one value per pixel.
type Source struct {
	Width    int
	Height   int
	BitDepth int // always 16 after decoding
	Format   string
	Samples  []uint16
}

// Decode reads the image at path and converts it to 16-bit grayscale
// elevation samples. PNG and TIFF containers are supported; other pixel
// models (8-bit gray, RGB) are converted, widening 8-bit channels to the
// full 16-bit range.
func Decode(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	src, err := fromImage(img)
	if err != nil {
		return nil, err
	}
	src.Format = format
	return src, nil
}

// fromImage extracts row-major 16-bit grayscale samples from a decoded image.
func fromImage(img image.Image) (*Source, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image bounds %v", ErrPixelFormat, img.Bounds())
	}

	gray, ok := img.(*image.Gray16)
	if !ok {
		// Convert whatever the container held into 16-bit gray.
		// 8-bit gray widens to the full range, color collapses to luma.
		converted := image.NewGray16(image.Rect(0, 0, w, h))
		draw.Draw(converted, converted.Bounds(), img, img.Bounds().Min, draw.Src)
		gray = converted
	}

	samples := make([]uint16, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := gray.PixOffset(gray.Rect.Min.X+x, gray.Rect.Min.Y+y)
			// Gray16 stores big-endian samples.
			samples[y*w+x] = binary.BigEndian.Uint16(gray.Pix[off:])
		}
	}

	return &Source{
		Width:    w,
		Height:   h,
		BitDepth: 16,
		Samples:  samples,
	}, nil
}
