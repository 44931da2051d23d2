// Package config handles viewer and exporter configuration.
package config

import (
	"github.com/Faultbox/quiver3d/pkg/glyph"
	"github.com/Faultbox/quiver3d/pkg/math"
)

// Config holds all viewer and exporter settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	View    ViewConfig    `yaml:"view"`
	Style   StyleConfig   `yaml:"style"`
	Vectors []VectorSet   `yaml:"vectors"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for the interactive viewer.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
	Title  string `yaml:"title"`
}

// ViewConfig holds the initial camera and axis state.
type ViewConfig struct {
	Azimuth   float32 `yaml:"azimuth"`   // degrees
	Elevation float32 `yaml:"elevation"` // degrees
	Distance  float32 `yaml:"distance"`
	PlotSpan  float32 `yaml:"plot_span"` // points

	// Aspect fixes the data aspect ratio when all components are positive;
	// leave it zero to keep the view in auto mode.
	Aspect [3]float32 `yaml:"aspect"`

	// LimitsMin/LimitsMax freeze the axis limits when both are set.
	LimitsMin *[3]float32 `yaml:"limits_min,omitempty"`
	LimitsMax *[3]float32 `yaml:"limits_max,omitempty"`
}

// StyleConfig holds the default glyph style applied to every vector set.
// Shorthand is parsed first; the explicit overrides win on conflict.
type StyleConfig struct {
	Shorthand string          `yaml:"shorthand"`
	Overrides glyph.Overrides `yaml:"overrides"`
}

// VectorSet describes one batch of glyphs to build.
type VectorSet struct {
	Name      string          `yaml:"name"`
	Origins   [][3]float32    `yaml:"origins"`
	Targets   [][3]float32    `yaml:"targets"`
	Shorthand string          `yaml:"shorthand"`
	Overrides glyph.Overrides `yaml:"overrides"`
}

// OriginVecs returns the origins as vectors.
func (s VectorSet) OriginVecs() []math.Vec3 {
	return toVecs(s.Origins)
}

// TargetVecs returns the targets as vectors.
func (s VectorSet) TargetVecs() []math.Vec3 {
	return toVecs(s.Targets)
}

func toVecs(in [][3]float32) []math.Vec3 {
	out := make([]math.Vec3, len(in))
	for i, p := range in {
		out[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	return out
}

// MergedOverrides resolves the style cascade for one vector set: global
// shorthand, global overrides, set shorthand, set overrides, later layers
// winning.
func MergedOverrides(global StyleConfig, set VectorSet) (glyph.Overrides, []glyph.Advisory, error) {
	base, advs, err := glyph.ApplyShorthand(global.Shorthand, global.Overrides)
	if err != nil {
		return glyph.Overrides{}, nil, err
	}
	local, localAdvs, err := glyph.ApplyShorthand(set.Shorthand, set.Overrides)
	if err != nil {
		return glyph.Overrides{}, nil, err
	}
	return local.Merge(base), append(advs, localAdvs...), nil
}

// ExportConfig holds headless export settings.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			VSync:  true,
			Title:  "quiver3d",
		},
		View: ViewConfig{
			Azimuth:   -37.5,
			Elevation: 30,
			Distance:  10,
			PlotSpan:  400,
		},
		Export: ExportConfig{
			Path: "glyphs.obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
