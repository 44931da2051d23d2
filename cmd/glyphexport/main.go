// Package main builds glyph groups headlessly and writes them as a
// Wavefront OBJ file.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/quiver3d/internal/config"
	"github.com/Faultbox/quiver3d/internal/logger"
	"github.com/Faultbox/quiver3d/pkg/glyph"
	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
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

	if err := export(cfg); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
}

func export(cfg *config.Config) error {
	if len(cfg.Vectors) == 0 {
		return fmt.Errorf("no vector sets configured")
	}

	s := scene.New()
	v := s.NewView()
	v.SetCameraAngles(cfg.View.Azimuth, cfg.View.Elevation)
	if cfg.View.PlotSpan > 0 {
		v.SetPlotSpan(cfg.View.PlotSpan)
	}
	if a := cfg.View.Aspect; a[0] > 0 && a[1] > 0 && a[2] > 0 {
		v.SetDataAspect(math.Vec3{X: a[0], Y: a[1], Z: a[2]})
	}
	if cfg.View.LimitsMin != nil && cfg.View.LimitsMax != nil {
		v.SetAxisLimits(scene.Bounds{
			Min: math.Vec3{X: cfg.View.LimitsMin[0], Y: cfg.View.LimitsMin[1], Z: cfg.View.LimitsMin[2]},
			Max: math.Vec3{X: cfg.View.LimitsMax[0], Y: cfg.View.LimitsMax[1], Z: cfg.View.LimitsMax[2]},
		})
	}

	c := glyph.NewController(s, logger.Log)
	for _, set := range cfg.Vectors {
		ov, advs, err := config.MergedOverrides(cfg.Style, set)
		if err != nil {
			return fmt.Errorf("vector set %q: %w", set.Name, err)
		}
		res, err := c.Build(v, set.OriginVecs(), set.TargetVecs(), ov)
		if err != nil {
			return fmt.Errorf("vector set %q: %w", set.Name, err)
		}
		for _, a := range append(advs, res.Advisories...) {
			logger.Warn("build advisory",
				zap.String("set", set.Name),
				zap.String("message", a.Message),
			)
		}
	}

	// Sizing depends on the axis limits, which may have grown while the
	// groups were added. One resync settles every group against the final
	// limits.
	if _, err := c.Resync(v, glyph.Overrides{}); err != nil {
		return fmt.Errorf("resync: %w", err)
	}

	f, err := os.Create(cfg.Export.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	groups := s.GroupsByTag(v, glyph.Tag)
	if err := WriteOBJ(f, groups); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Export.Path, err)
	}

	logger.Info("exported glyph groups",
		zap.String("path", cfg.Export.Path),
		zap.Int("groups", len(groups)),
	)
	return nil
}
