// Package export renders a single sketch frame without a window and writes
// the wireframe as PNG or SVG.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wireterrain/internal/engine/camera"
	"github.com/Faultbox/wireterrain/internal/engine/canvas"
	"github.com/Faultbox/wireterrain/internal/logger"
	"github.com/Faultbox/wireterrain/internal/sketch"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown snapshot format %q (want png or svg)", s)
	}
}

// Sketch is the part of the host contract a single-frame export needs.
type Sketch interface {
	Setup(vp sketch.Viewport) error
	Draw(f sketch.Frame, c canvas.Canvas)
}

// Options controls one snapshot.
type Options struct {
	Format  Format
	Width   int
	Height  int
	Elapsed time.Duration
	Camera  *camera.OrbitCamera // nil uses the default camera for Width x Height
}

// Result reports what was written.
type Result struct {
	Edges  int // projected edges written
	Culled int // edges dropped for crossing the near plane
}

type encoder interface {
	segmentWriter
	encode(w io.Writer) error
}

// Snapshot runs Setup and one Draw at opts.Elapsed and encodes the frame to w.
func Snapshot(sk Sketch, opts Options, w io.Writer) (Result, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return Result{}, fmt.Errorf("snapshot size %dx%d is not drawable", opts.Width, opts.Height)
	}

	var enc encoder
	switch opts.Format {
	case FormatPNG:
		enc = newPNGWriter(opts.Width, opts.Height)
	case FormatSVG:
		enc = newSVGWriter(opts.Width, opts.Height)
	default:
		return Result{}, fmt.Errorf("unknown snapshot format %q", opts.Format)
	}

	cam := opts.Camera
	if cam == nil {
		cam = camera.NewOrbitCamera(opts.Width, opts.Height)
	}

	vp := sketch.Viewport{Width: opts.Width, Height: opts.Height}
	if err := sk.Setup(vp); err != nil {
		return Result{}, fmt.Errorf("setup: %w", err)
	}

	lc := newLineCanvas(cam.ViewProjection(), opts.Width, opts.Height, enc)
	sk.Draw(sketch.Frame{Elapsed: opts.Elapsed, Viewport: vp}, lc)

	if err := enc.encode(w); err != nil {
		return Result{}, fmt.Errorf("encoding %s: %w", opts.Format, err)
	}

	res := Result{Edges: lc.edges, Culled: lc.culled}
	logger.Named("export").Debug("snapshot rendered",
		zap.String("format", string(opts.Format)),
		zap.Duration("elapsed", opts.Elapsed),
		zap.Int("edges", res.Edges),
		zap.Int("culled", res.Culled),
	)
	return res, nil
}

// SnapshotFile writes a snapshot to dir, naming the file after the elapsed
// time, and returns the path.
func SnapshotFile(sk Sketch, opts Options, dir string) (string, Result, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", Result{}, fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := fmt.Sprintf("terrain_%08dms.%s", opts.Elapsed.Milliseconds(), opts.Format)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", Result{}, fmt.Errorf("creating file: %w", err)
	}

	res, err := Snapshot(sk, opts, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", Result{}, err
	}
	return path, res, nil
}
