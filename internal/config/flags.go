package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagAzimuth   = flag.Float64("azimuth", sentinelAngle, "Camera azimuth in degrees")
	flagElevation = flag.Float64("elevation", sentinelAngle, "Camera elevation in degrees")
	flagShorthand = flag.String("style", "", "Default style shorthand, e.g. r1.5x")
	flagOut       = flag.String("out", "", "Export output path")
)

// sentinelAngle marks an angle flag as unset.
const sentinelAngle = -1e9

// ParseFlags parses command-line flags. Call this early in main().
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
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagAzimuth != sentinelAngle {
		cfg.View.Azimuth = float32(*flagAzimuth)
	}
	if *flagElevation != sentinelAngle {
		cfg.View.Elevation = float32(*flagElevation)
	}
	if *flagShorthand != "" {
		cfg.Style.Shorthand = *flagShorthand
	}
	if *flagOut != "" {
		cfg.Export.Path = *flagOut
	}
}
