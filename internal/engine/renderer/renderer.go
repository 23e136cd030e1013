// Package renderer draws canvas primitives with OpenGL.
package renderer

import (
	"fmt"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/wireterrain/internal/engine/canvas"
	"github.com/Faultbox/wireterrain/internal/engine/renderer/shaders"
	"github.com/Faultbox/wireterrain/internal/engine/shader"
	"github.com/Faultbox/wireterrain/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// strip is one batched triangle strip.
type strip struct {
	first, count int32
	color        [4]float32
	weight       float32
	fill         bool
}

// Renderer implements canvas.Canvas. Shapes are batched during the frame
// and drawn by End.
type Renderer struct {
	config Config

	program     uint32
	locViewProj int32
	locColor    int32

	vao uint32
	vbo uint32

	style    canvas.Style
	offset   [3]float32
	vertices []float32
	strips   []strip
	open     bool

	lineWidthRange [2]float32
	warnedWidth    bool

	log *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		style:  canvas.DefaultStyle(),
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &r.lineWidthRange[0])
	r.log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
		zap.Float32s("line_width_range", r.lineWidthRange[:]),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.MULTISAMPLE)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shaders.WireVertexShader, shaders.WireFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("wire shader: %w", err)
	}
	r.locViewProj = shader.MustGetUniform(r.program, "uViewProj")
	r.locColor = shader.MustGetUniform(r.program, "uColor")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("wire pipeline created",
		zap.Uint32("program", r.program),
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles a framebuffer size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame: the transform is reset and the batch emptied.
func (r *Renderer) Begin() {
	r.offset = [3]float32{}
	r.vertices = r.vertices[:0]
	r.strips = r.strips[:0]
	r.open = false
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// End uploads the batch and draws it with the given view-projection.
func (r *Renderer) End(viewProj mgl32.Mat4) {
	if len(r.strips) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, unsafe.Pointer(&r.vertices[0]), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, &viewProj[0])
	gl.BindVertexArray(r.vao)

	for _, s := range r.strips {
		gl.Uniform4fv(r.locColor, 1, &s.color[0])
		if s.fill {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
			gl.LineWidth(r.lineWidth(s.weight))
		}
		gl.DrawArrays(gl.TRIANGLE_STRIP, s.first, s.count)
	}

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// lineWidth clamps w to what the driver supports. Core profiles often
// only rasterize width 1.
func (r *Renderer) lineWidth(w float32) float32 {
	lo, hi := r.lineWidthRange[0], r.lineWidthRange[1]
	if hi <= 0 {
		return 1
	}
	if w < lo {
		return lo
	}
	if w > hi {
		if !r.warnedWidth {
			r.log.Debug("stroke weight exceeds driver line width",
				zap.Float32("requested", w),
				zap.Float32("max", hi),
			)
			r.warnedWidth = true
		}
		return hi
	}
	return w
}

// ReadPixels returns the current framebuffer as RGBA bytes, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	return pixels, w, h
}

// Background clears the frame. Shapes batched earlier in the frame are discarded.
func (r *Renderer) Background(c color.RGBA) {
	r.style.Background = c
	r.vertices = r.vertices[:0]
	r.strips = r.strips[:0]
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// NoFill implements canvas.Canvas.
func (r *Renderer) NoFill() { r.style.Fill = false }

// Stroke implements canvas.Canvas.
func (r *Renderer) Stroke(c color.RGBA) { r.style.Stroke = c }

// StrokeWeight implements canvas.Canvas.
func (r *Renderer) StrokeWeight(w float32) { r.style.Weight = w }

// Translate implements canvas.Canvas.
func (r *Renderer) Translate(x, y, z float32) {
	r.offset[0] += x
	r.offset[1] += y
	r.offset[2] += z
}

// BeginShape implements canvas.Canvas. Only triangle strips are supported.
func (r *Renderer) BeginShape(kind canvas.ShapeKind) {
	if kind != canvas.TriangleStrip {
		r.log.Warn("unsupported shape kind", zap.Stringer("kind", kind))
		return
	}
	c := r.style.Stroke
	r.strips = append(r.strips, strip{
		first:  int32(len(r.vertices) / 3),
		color:  [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255},
		weight: r.style.Weight,
		fill:   r.style.Fill,
	})
	r.open = true
}

// Vertex implements canvas.Canvas.
func (r *Renderer) Vertex(x, y, z float32) {
	if !r.open {
		return
	}
	r.vertices = append(r.vertices, x+r.offset[0], y+r.offset[1], z+r.offset[2])
	r.strips[len(r.strips)-1].count++
}

// EndShape implements canvas.Canvas.
func (r *Renderer) EndShape() {
	r.open = false
}
