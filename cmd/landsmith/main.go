// landsmith is a CLI utility for turning grayscale height maps into
// terrain grids, parameters, and previews.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/landsmith/internal/config"
	"github.com/Faultbox/landsmith/internal/logger"
	"github.com/Faultbox/landsmith/pkg/heightmap"
	"github.com/Faultbox/landsmith/pkg/terrain"
	"github.com/Faultbox/landsmith/pkg/terrain/preview"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "generate", "gen":
		cmdGenerate(cfg, args)
	case "info":
		cmdInfo(cfg, args)
	case "snapshot", "snap":
		cmdSnapshot(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func cmdGenerate(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: landsmith generate <heightmap>")
		os.Exit(1)
	}
	path := args[0]

	builder := &preview.Builder{
		OutputDir: cfg.Preview.OutputDir,
		Name:      baseName(path),
		Hillshade: cfg.Preview.Hillshade,
		Logger:    logger.Log,
	}
	gen := terrain.NewGenerator(builder, terrain.Options{
		BlockWorldSize: cfg.Terrain.BlockWorldSize,
		VerticalScale:  cfg.Terrain.VerticalScale,
		Logger:         logger.Log,
	})

	handle, err := gen.Generate(path, cfg.Terrain.NumBlocks)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Terrain %s\n", handle.ID)
	fmt.Printf("  Grid size:        %d\n", handle.GridSize)
	fmt.Printf("  Component quads:  %d\n", handle.Params.ComponentQuads)
	fmt.Printf("  Subsection quads: %d (x%d)\n", handle.Params.SubsectionQuads, handle.Params.NumSubsections)
	fmt.Printf("  Horizontal scale: %g\n", handle.Scales.Horizontal)
	fmt.Printf("  Vertical scale:   %g\n", handle.Scales.Vertical)
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: landsmith info <heightmap>")
		os.Exit(1)
	}

	src, err := heightmap.Decode(args[0])
	if err != nil {
		fail(err)
	}

	grid := src.ResizeToGrid()
	params := terrain.DeriveParams(grid.Size)
	scales := terrain.ComputeScales(grid.Size, cfg.Terrain.NumBlocks,
		cfg.Terrain.BlockWorldSize, cfg.Terrain.VerticalScale)

	fmt.Printf("%s: %s %dx%d, %d-bit grayscale\n", args[0], src.Format, src.Width, src.Height, src.BitDepth)
	fmt.Printf("  Grid size:        %d (power of two)\n", grid.Size)
	fmt.Printf("  Component quads:  %d\n", params.ComponentQuads)
	fmt.Printf("  Horizontal scale: %g\n", scales.Horizontal)
	fmt.Printf("  Vertical scale:   %g\n", scales.Vertical)
}

func cmdSnapshot(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: landsmith snapshot <heightmap> <out.lsg>")
		os.Exit(1)
	}

	src, err := heightmap.Decode(args[0])
	if err != nil {
		fail(err)
	}
	grid := src.ResizeToGrid()

	out, err := os.Create(args[1])
	if err != nil {
		fail(err)
	}
	defer out.Close()

	if err := heightmap.WriteSnapshot(out, grid); err != nil {
		fail(err)
	}

	fmt.Printf("Wrote %dx%d grid snapshot to %s\n", grid.Size, grid.Size, args[1])
}

func fail(err error) {
	switch {
	case errors.Is(err, heightmap.ErrFileRead):
		fmt.Fprintf(os.Stderr, "Cannot read height map: %v\n", err)
	case errors.Is(err, heightmap.ErrFormat):
		fmt.Fprintf(os.Stderr, "Unrecognized image format: %v\n", err)
	case errors.Is(err, heightmap.ErrPixelFormat):
		fmt.Fprintf(os.Stderr, "Unsupported pixel format: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logger.Sync()
	os.Exit(1)
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func printUsage() {
	fmt.Println(`landsmith - height map terrain generation utility

Usage:
  landsmith [flags] <command> [args]

Commands:
  generate <heightmap>            Generate terrain and write preview images
  info <heightmap>                Show derived grid, params, and scales
  snapshot <heightmap> <out.lsg>  Write a compressed height grid snapshot

Flags:
  -config <path>  Config file (default: ./landsmith.yaml)
  -blocks <n>     Number of world blocks to cover (expected perfect square)
  -out <dir>      Preview output directory
  -shade          Also write a hillshaded preview
  -debug          Enable debug logging

Examples:
  landsmith generate alpine.png
  landsmith -blocks 16 -shade generate alpine.png
  landsmith info alpine.png
  landsmith snapshot alpine.png alpine.lsg`)
}
