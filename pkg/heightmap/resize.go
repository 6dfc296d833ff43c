package heightmap

import "math/bits"

// Grid is a square, power-of-two height grid ready for terrain import.
// Samples are row-major with length Size*Size.
type Grid struct {
	Size    int
	Samples []uint16
}

// At returns the sample at (x, y), or 0 (sea level) out of bounds.
func (g *Grid) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= g.Size || y >= g.Size {
		return 0
	}
	return g.Samples[y*g.Size+x]
}

// NextPowerOfTwo rounds v up to the nearest power of two.
// For any v >= 1 the result r satisfies v <= r < 2v.
func NextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}

// ResizeToGrid pads the source into a square power-of-two grid.
//
// The target size is derived from the source width alone; the source height
// is never consulted when sizing the output, so a non-square image becomes a
// square grid sized by its width. Source data is copied into the top-left
// region, rows beyond the target are clipped, and padding cells stay at
// zero height (flat sea level).
func (s *Source) ResizeToGrid() *Grid {
	target := NextPowerOfTwo(s.Width)

	samples := make([]uint16, target*target)
	for y := 0; y < s.Height && y < target; y++ {
		copy(samples[y*target:y*target+s.Width], s.Samples[y*s.Width:(y+1)*s.Width])
	}

	return &Grid{Size: target, Samples: samples}
}
