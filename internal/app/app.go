// Package app runs a sketch inside an SDL2/OpenGL window.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wireterrain/internal/config"
	"github.com/Faultbox/wireterrain/internal/engine/camera"
	"github.com/Faultbox/wireterrain/internal/engine/canvas"
	"github.com/Faultbox/wireterrain/internal/engine/debug"
	"github.com/Faultbox/wireterrain/internal/engine/input"
	"github.com/Faultbox/wireterrain/internal/engine/renderer"
	"github.com/Faultbox/wireterrain/internal/engine/window"
	"github.com/Faultbox/wireterrain/internal/logger"
	"github.com/Faultbox/wireterrain/internal/sketch"
	"github.com/Faultbox/wireterrain/internal/terrain"
)

// Sketch is the set of callbacks the host drives.
type Sketch interface {
	Setup(vp sketch.Viewport) error
	Draw(f sketch.Frame, c canvas.Canvas)
	Resized(vp sketch.Viewport)
}

// statser is implemented by sketches that can report height statistics.
type statser interface {
	Stats() (terrain.Stats, error)
}

// App is the interactive host.
type App struct {
	config  *config.Config
	sketch  Sketch
	running bool

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	camera     *camera.OrbitCamera
	screenshot *debug.ScreenshotCapture

	log *zap.Logger
}

// New creates the window and GL pipeline for sk.
func New(cfg *config.Config, sk Sketch) (*App, error) {
	a := &App{
		config: cfg,
		sketch: sk,
		log:    logger.Named("app"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "wireterrain",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come AFTER window, since the GL context must exist
	fbWidth, fbHeight := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  fbWidth,
		Height: fbHeight,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	winWidth, winHeight := a.window.GetSize()
	a.camera = camera.FromConfig(cfg, winWidth, winHeight)
	a.screenshot = debug.NewScreenshotCapture(cfg.Snapshot.OutputDir, "terrain")

	a.log.Info("app initialized",
		zap.Int("window_w", winWidth),
		zap.Int("window_h", winHeight),
		zap.Int("framebuffer_w", fbWidth),
		zap.Int("framebuffer_h", fbHeight),
	)
	return a, nil
}

// Run calls Setup once, then Draw every frame until the window closes.
func (a *App) Run() error {
	width, height := a.window.GetSize()
	if err := a.sketch.Setup(sketch.Viewport{Width: width, Height: height}); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	a.running = true

	var frameBudget time.Duration
	if a.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.config.Graphics.FPSLimit)
	}

	start := time.Now()
	frameCount := 0
	fpsTimer := start

	a.log.Info("starting render loop", zap.Duration("frame_budget", frameBudget))

	for a.running {
		frameStart := time.Now()

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		// 2. Draw
		width, height := a.window.GetSize()
		frame := sketch.Frame{
			Elapsed:  frameStart.Sub(start),
			Viewport: sketch.Viewport{Width: width, Height: height},
		}
		a.renderer.Begin()
		a.sketch.Draw(frame, a.renderer)
		a.renderer.End(a.camera.ViewProjection())

		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.captureScreenshot()
		}

		// 3. Present
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if since := time.Since(fpsTimer); since >= time.Second {
			a.logFrameStats(frameCount, since)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if spent := time.Since(frameStart); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			fbWidth, fbHeight := a.window.GetDrawableSize()
			a.renderer.Resize(fbWidth, fbHeight)
			a.camera.Fit(event.Width, event.Height)
			a.sketch.Resized(sketch.Viewport{Width: event.Width, Height: event.Height})
		case input.EventMouseDrag:
			a.camera.HandleDrag(float32(event.DX), float32(event.DY))
		case input.EventMouseWheel:
			a.camera.HandleZoom(event.Wheel)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_R:
				a.camera.Reset()
			}
		}
	}
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) logFrameStats(frames int, span time.Duration) {
	fields := []zap.Field{
		zap.Float64("fps", float64(frames)/span.Seconds()),
	}
	if s, ok := a.sketch.(statser); ok {
		if stats, err := s.Stats(); err == nil {
			fields = append(fields,
				zap.Float64("height_min", stats.Min),
				zap.Float64("height_max", stats.Max),
				zap.Float64("height_mean", stats.Mean),
			)
		}
	}
	a.log.Debug("frame stats", fields...)
}

// Close releases GL and window resources.
func (a *App) Close() {
	a.log.Info("closing app")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
