package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagOut    = flag.String("out", "", "Preview output directory")
	flagBlocks = flag.Int("blocks", 0, "Number of world blocks to cover")
	flagShade  = flag.Bool("shade", false, "Also write a hillshaded preview")
)

// ParseFlags parses command-line flags. Call this early in main().
// Flags must precede the subcommand on the command line.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Preview.OutputDir = *flagOut
	}
	if *flagBlocks > 0 {
		cfg.Terrain.NumBlocks = *flagBlocks
	}
	if *flagShade {
		cfg.Preview.Hillshade = true
	}
}
