package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/quiver3d/internal/config"
	"github.com/Faultbox/quiver3d/internal/logger"
	"github.com/Faultbox/quiver3d/internal/render"
	"github.com/Faultbox/quiver3d/pkg/glyph"
	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// orbit sensitivity in degrees per pixel, zoom factor per wheel notch.
const (
	orbitSpeed = 0.4
	zoomStep   = 0.9
	// clickSlop is the max drag distance in pixels still counted as a click.
	clickSlop = 4
)

// viewer owns the window, the scene, and the glyph controller.
type viewer struct {
	cfg *config.Config

	window   *render.Window
	renderer *render.SurfaceRenderer

	scene      *scene.Scene
	view       *scene.View
	controller *glyph.Controller

	dragging  bool
	dragMoved float32
}

func newViewer(cfg *config.Config) (*viewer, error) {
	vw := &viewer{
		cfg:   cfg,
		scene: scene.New(),
	}

	vw.view = vw.scene.NewView()
	applyViewConfig(vw.view, cfg.View)

	vw.controller = glyph.NewController(vw.scene, logger.Log)
	vw.controller.BindActivation()

	if err := vw.buildSets(); err != nil {
		return nil, err
	}
	frameView(vw.view)

	window, err := render.NewWindow(render.WindowConfig{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	}, logger.Log)
	if err != nil {
		return nil, err
	}
	vw.window = window

	if err := gl.Init(); err != nil {
		window.Close()
		return nil, fmt.Errorf("OpenGL init failed: %w", err)
	}

	renderer, err := render.NewSurfaceRenderer()
	if err != nil {
		window.Close()
		return nil, err
	}
	vw.renderer = renderer

	return vw, nil
}

// applyViewConfig pushes the configured camera and axis state into the view.
func applyViewConfig(v *scene.View, vc config.ViewConfig) {
	v.SetCameraAngles(vc.Azimuth, vc.Elevation)
	if vc.Distance > 0 {
		v.SetDistance(vc.Distance)
	}
	if vc.PlotSpan > 0 {
		v.SetPlotSpan(vc.PlotSpan)
	}
	if vc.Aspect[0] > 0 && vc.Aspect[1] > 0 && vc.Aspect[2] > 0 {
		v.SetDataAspect(math.Vec3{X: vc.Aspect[0], Y: vc.Aspect[1], Z: vc.Aspect[2]})
	}
	if vc.LimitsMin != nil && vc.LimitsMax != nil {
		v.SetAxisLimits(scene.Bounds{
			Min: math.Vec3{X: vc.LimitsMin[0], Y: vc.LimitsMin[1], Z: vc.LimitsMin[2]},
			Max: math.Vec3{X: vc.LimitsMax[0], Y: vc.LimitsMax[1], Z: vc.LimitsMax[2]},
		})
	}
}

// buildSets constructs one glyph group per configured vector set.
func (vw *viewer) buildSets() error {
	for _, set := range vw.cfg.Vectors {
		ov, advs, err := config.MergedOverrides(vw.cfg.Style, set)
		if err != nil {
			return fmt.Errorf("vector set %q: %w", set.Name, err)
		}
		res, err := vw.controller.Build(vw.view, set.OriginVecs(), set.TargetVecs(), ov)
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
	return nil
}

// frameView aims the camera at the center of the axis limits from a distance
// proportional to their diagonal.
func frameView(v *scene.View) {
	lim := v.AxisLimits()
	v.SetLookTarget(lim.Center())
	if d := lim.Span().Length(); d > 0 {
		v.SetDistance(d * 1.6)
	}
}

// Run drives the event and render loop until quit.
func (vw *viewer) Run() error {
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if quit := vw.handleEvent(ev); quit {
				return nil
			}
		}
		vw.drawFrame()
	}
}

func (vw *viewer) handleEvent(ev sdl.Event) (quit bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
			return true
		}

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			break
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			vw.dragging = true
			vw.dragMoved = 0
		} else if e.Type == sdl.MOUSEBUTTONUP {
			vw.dragging = false
			if vw.dragMoved <= clickSlop {
				vw.pick(float32(e.X), float32(e.Y))
			} else {
				// The camera moved; rebuild so glyph cross sections match
				// the new viewpoint.
				vw.resyncAll()
			}
		}

	case *sdl.MouseMotionEvent:
		if vw.dragging {
			vw.dragMoved += math.Vec3{X: float32(e.XRel), Y: float32(e.YRel)}.Length()
			vw.orbit(float32(e.XRel), float32(e.YRel))
		}

	case *sdl.MouseWheelEvent:
		vw.zoom(e.Y)
	}
	return false
}

// orbit rotates the camera around the look target.
func (vw *viewer) orbit(dx, dy float32) {
	az, el := vw.view.CameraAngles()
	az -= dx * orbitSpeed
	el += dy * orbitSpeed
	if el > 89 {
		el = 89
	}
	if el < -89 {
		el = -89
	}
	vw.view.SetCameraAngles(az, el)
}

// zoom moves the camera toward or away from the look target.
func (vw *viewer) zoom(notches int32) {
	d := vw.view.Distance()
	for ; notches > 0; notches-- {
		d *= zoomStep
	}
	for ; notches < 0; notches++ {
		d /= zoomStep
	}
	vw.view.SetDistance(d)
}

// pick casts a ray through the clicked pixel and activates the hit group,
// which resynchronizes it through the controller's activation binding.
func (vw *viewer) pick(x, y float32) {
	w, h := vw.window.Size()
	inv := render.CameraMatrix(vw.view, w, h).Inverse()
	ray := render.ScreenToRay(x, y, float32(w), float32(h), inv)

	groups := vw.scene.GroupsByTag(vw.view, glyph.Tag)
	if g, ok := render.PickGroup(ray, groups); ok {
		logger.Debug("glyph group clicked", zap.Uint64("group", uint64(g.ID())))
		vw.scene.Activate(g.ID())
	}
}

// resyncAll rebuilds every glyph group under the view for the current camera.
func (vw *viewer) resyncAll() {
	if _, err := vw.controller.Resync(vw.view, glyph.Overrides{}); err != nil {
		logger.Error("resync failed", zap.Error(err))
	}
}

func (vw *viewer) drawFrame() {
	w, h := vw.window.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0.12, 0.12, 0.14, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	groups := vw.scene.GroupsByTag(vw.view, glyph.Tag)
	vw.renderer.Draw(vw.view, groups, w, h)

	vw.window.SwapBuffers()
}

// Close releases the renderer and window.
func (vw *viewer) Close() {
	if vw.renderer != nil {
		vw.renderer.Release()
	}
	if vw.window != nil {
		vw.window.Close()
	}
}
