// Package preview provides a terrain.Builder for authoring contexts that
// renders the height grid to image files instead of a live host.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/landsmith/pkg/heightmap"
	"github.com/Faultbox/landsmith/pkg/terrain"
)

// Builder writes each built terrain as a 16-bit grayscale PNG, plus an
// optional hillshaded rendering, into OutputDir.
type Builder struct {
	OutputDir string
	Name      string // base name for output files
	Hillshade bool
	Logger    *zap.Logger
}

// Build renders the grid to disk and returns a handle naming the result.
func (b *Builder) Build(grid *heightmap.Grid, params terrain.Params, scales terrain.Scales) (terrain.Handle, error) {
	if b.OutputDir != "" {
		if err := os.MkdirAll(b.OutputDir, 0755); err != nil {
			return terrain.Handle{}, fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := b.Name
	if name == "" {
		name = "terrain"
	}

	if err := b.writePNG(name+".png", grayImage(grid)); err != nil {
		return terrain.Handle{}, err
	}
	if b.Hillshade {
		if err := b.writePNG(name+"_shade.png", shadeImage(grid, scales)); err != nil {
			return terrain.Handle{}, err
		}
	}

	handle := terrain.Handle{
		ID:       uuid.New(),
		GridSize: grid.Size,
		Params:   params,
		Scales:   scales,
	}
	if b.Logger != nil {
		b.Logger.Info("terrain preview written",
			zap.String("dir", b.OutputDir),
			zap.String("name", name),
			zap.Int("grid_size", grid.Size))
	}
	return handle, nil
}

func (b *Builder) writePNG(name string, img image.Image) error {
	path := name
	if b.OutputDir != "" {
		path = filepath.Join(b.OutputDir, name)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// grayImage copies the grid into a 16-bit grayscale image.
func grayImage(grid *heightmap.Grid) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, grid.Size, grid.Size))
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			img.SetGray16(x, y, color.Gray16{Y: grid.At(x, y)})
		}
	}
	return img
}

// shadeImage renders a simple lambertian hillshade with a fixed northwest
// light, using the world-space scales so relief matches the final terrain.
func shadeImage(grid *heightmap.Grid, scales terrain.Scales) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, grid.Size, grid.Size))

	// Light direction, normalized northwest at 45 degrees elevation.
	lx, ly, lz := -0.5, -0.5, math.Sqrt2/2

	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			// Central-difference gradient in world units.
			dx := (float64(grid.At(x+1, y)) - float64(grid.At(x-1, y))) * scales.Vertical / (2 * scales.Horizontal)
			dy := (float64(grid.At(x, y+1)) - float64(grid.At(x, y-1))) * scales.Vertical / (2 * scales.Horizontal)

			// Surface normal is (-dx, -dy, 1) normalized.
			norm := math.Sqrt(dx*dx + dy*dy + 1)
			light := (-dx*lx - dy*ly + lz) / norm
			if light < 0 {
				light = 0
			}
			img.SetGray(x, y, color.Gray{Y: uint8(light * 255)})
		}
	}
	return img
}
