// Package terrain derives landscape import parameters from a height grid
// and drives the decode-resize-build generation pipeline.
package terrain

import "math"

// MinComponentQuads is the smallest component edge length handed to a
// builder. Terrain renderers want component edges of 2^n - 1 quads; the
// floor keeps very small height maps from producing degenerate terrains.
const MinComponentQuads = 63

// Params describes how a height grid is tiled into renderable patches.
type Params struct {
	ComponentQuads  int
	SubsectionQuads int
	NumSubsections  int
}

// DeriveParams picks component and subsection quad counts for a grid of the
// given side length. Subsections are collapsed to a single one the same size
// as the component.
func DeriveParams(gridSize int) Params {
	quads := gridSize - 1
	if quads < MinComponentQuads {
		quads = MinComponentQuads
	}
	return Params{
		ComponentQuads:  quads,
		SubsectionQuads: quads,
		NumSubsections:  1,
	}
}

// Scales maps grid cells and height samples into world units.
type Scales struct {
	Horizontal float64 // world units per grid cell
	Vertical   float64 // world units per height-sample unit
}

// ComputeScales computes world-space scale factors for a grid covering
// numBlocks blocks of blockWorldSize world units each.
//
// The block grid side is round(sqrt(numBlocks)); a numBlocks that is not a
// perfect square silently rounds to the nearest square side, which may
// under- or over-cover the requested count. The vertical scale is passed
// through unchanged.
func ComputeScales(gridSize, numBlocks int, blockWorldSize, desiredVerticalScale float64) Scales {
	sideBlocks := math.Round(math.Sqrt(float64(numBlocks)))
	totalWorldSize := blockWorldSize * sideBlocks
	return Scales{
		Horizontal: totalWorldSize / float64(gridSize),
		Vertical:   desiredVerticalScale,
	}
}
