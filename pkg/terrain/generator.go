package terrain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/landsmith/pkg/heightmap"
)

// ErrHostUnavailable is returned when no Builder is attached, before any
// decoding work is done. Outside an authoring context there is nothing to
// attach terrain to.
var ErrHostUnavailable = errors.New("no terrain builder attached")

// Default world mapping: a block is a 500 m square (50000 world units), and
// the stock vertical scale sits in the middle of the useful 20-35 range.
const (
	DefaultBlockWorldSize = 50000.0
	DefaultVerticalScale  = 25.0
)

// Options tunes the generation pipeline.
type Options struct {
	BlockWorldSize float64 // world units per block edge; 0 means DefaultBlockWorldSize
	VerticalScale  float64 // world units per height-sample unit; 0 means DefaultVerticalScale
	Logger         *zap.Logger
}

// Generator runs the height map generation pipeline against a Builder.
type Generator struct {
	builder Builder
	opts    Options
	log     *zap.Logger
}

// NewGenerator creates a Generator targeting the given builder.
// A nil builder is allowed; Generate will then fail with ErrHostUnavailable.
func NewGenerator(builder Builder, opts Options) *Generator {
	if opts.BlockWorldSize == 0 {
		opts.BlockWorldSize = DefaultBlockWorldSize
	}
	if opts.VerticalScale == 0 {
		opts.VerticalScale = DefaultVerticalScale
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{builder: builder, opts: opts, log: log}
}

// Generate decodes the height map at path, resizes it to a power-of-two
// grid, derives terrain parameters and scales for a numBlocks-block world
// footprint, and hands everything to the builder.
//
// The pipeline is a single atomic unit of work: each stage fails fast and
// no partial terrain is ever exposed on error.
func (g *Generator) Generate(path string, numBlocks int) (Handle, error) {
	if g.builder == nil {
		return Handle{}, ErrHostUnavailable
	}

	src, err := heightmap.Decode(path)
	if err != nil {
		return Handle{}, fmt.Errorf("decoding height map %s: %w", path, err)
	}
	if src.Width != src.Height {
		g.log.Warn("non-square height map, grid size follows width",
			zap.Int("width", src.Width),
			zap.Int("height", src.Height))
	}

	grid := src.ResizeToGrid()
	g.log.Info("height map decoded",
		zap.String("path", path),
		zap.String("format", src.Format),
		zap.Int("original_width", src.Width),
		zap.Int("original_height", src.Height),
		zap.Int("grid_size", grid.Size))

	params := DeriveParams(grid.Size)
	scales := ComputeScales(grid.Size, numBlocks, g.opts.BlockWorldSize, g.opts.VerticalScale)
	g.log.Info("terrain parameters derived",
		zap.Int("component_quads", params.ComponentQuads),
		zap.Int("subsection_quads", params.SubsectionQuads),
		zap.Float64("horizontal_scale", scales.Horizontal),
		zap.Float64("vertical_scale", scales.Vertical))

	handle, err := g.builder.Build(grid, params, scales)
	if err != nil {
		return Handle{}, fmt.Errorf("building terrain: %w", err)
	}

	g.log.Info("terrain created",
		zap.String("id", handle.ID.String()),
		zap.Int("grid_size", handle.GridSize),
		zap.Int("component_quads", handle.Params.ComponentQuads))
	return handle, nil
}
