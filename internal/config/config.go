// Package config handles landsmith configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds world-space mapping settings for generated terrain.
type TerrainConfig struct {
	BlockWorldSize float64 `yaml:"block_world_size"` // world units per block edge
	VerticalScale  float64 `yaml:"vertical_scale"`   // world units per height-sample unit
	NumBlocks      int     `yaml:"num_blocks"`       // default block count, expected perfect square
}

// PreviewConfig holds settings for the preview terrain builder.
type PreviewConfig struct {
	OutputDir string `yaml:"output_dir"`
	Hillshade bool   `yaml:"hillshade"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			BlockWorldSize: 50000, // 500 meters
			VerticalScale:  25,
			NumBlocks:      4,
		},
		Preview: PreviewConfig{
			OutputDir: "previews",
			Hillshade: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
