// Package renderer draws the scene through OpenGL.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/glasswing/tetherbox/internal/engine/camera"
	"github.com/glasswing/tetherbox/internal/engine/lighting"
	"github.com/glasswing/tetherbox/internal/engine/primitive"
	"github.com/glasswing/tetherbox/internal/engine/renderer/shaders"
	"github.com/glasswing/tetherbox/internal/engine/scene"
	"github.com/glasswing/tetherbox/internal/engine/surface"
	"github.com/glasswing/tetherbox/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL programs, buffers and textures for one scene.
type Renderer struct {
	config Config

	phong   *program
	terrain *program

	meshes map[*scene.Object]*mesh
}

// mesh is the GPU residence of one object's geometry.
type mesh struct {
	vao     uint32
	vbo     uint32
	texture uint32

	// Surfaces draw strip by strip; solids draw one triangle list.
	strips   int32
	perStrip int32
	count    int32
}

// New initializes OpenGL and compiles both programs. The GL context must
// be current on the calling thread.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	vendor := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", vendor),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.5, 0.5, 0.8, 1.0)

	r := &Renderer{
		config: cfg,
		meshes: make(map[*scene.Object]*mesh),
	}

	var err error
	if r.phong, err = newProgram(shaders.PhongVertexShader, shaders.PhongFragmentShader); err != nil {
		return nil, fmt.Errorf("phong program: %w", err)
	}
	if r.terrain, err = newProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("terrain program: %w", err)
	}

	return r, nil
}

// Upload creates GPU buffers and textures for every object in the scene.
// It must run before the first RenderFrame.
func (r *Renderer) Upload(s *scene.Scene) {
	for _, o := range s.Objects() {
		m := &mesh{}
		switch {
		case o.Surface != nil:
			m.vao, m.vbo = uploadSurface(o.Surface)
			m.strips = int32(o.Surface.Strips)
			m.perStrip = int32(o.Surface.VerticesPerStrip)
		case len(o.Solid) > 0:
			m.vao, m.vbo = uploadSolid(o.Solid)
			m.count = int32(len(o.Solid))
		default:
			continue
		}
		if o.Texture != nil {
			m.texture = uploadTexture(o.Texture)
		}
		r.meshes[o] = m
	}
	logger.Debug("scene uploaded", zap.Int("objects", len(r.meshes)))
}

// RenderFrame clears the window and draws the scene twice: the camera
// riding the body fills the left half, the orbiting world camera the
// right.
func (r *Renderer) RenderFrame(s *scene.Scene) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	w, h := int32(r.config.Width), int32(r.config.Height)
	r.drawView(s, s.BodyCamera(), 0, 0, w/2, h)
	r.drawView(s, s.WorldCamera(), w/2, 0, w/2, h)
}

// ReadPixels copies the drawn frame back as tightly packed RGBA rows,
// bottom row first, the way GL returns them. Call after RenderFrame and
// before the buffer swap.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

func (r *Renderer) drawView(s *scene.Scene, cam camera.Camera, x, y, w, h int32) {
	gl.Viewport(x, y, w, h)

	view, proj := cam.View(), cam.Projection()
	for _, o := range s.Objects() {
		r.drawObject(o, s.Lights(), cam.Eye, view, proj)
	}
}

func (r *Renderer) drawObject(o *scene.Object, lights []lighting.Light, eye mgl64.Vec3, view, proj mgl64.Mat4) {
	m := r.meshes[o]
	if m == nil {
		return
	}
	p := r.phong
	if o.Shader == scene.ShaderTerrain {
		p = r.terrain
	}

	pose := o.Pose()
	model := pose.Matrix()
	mvp := proj.Mul4(view).Mul4(model)

	gl.UseProgram(p.id)
	setMat4(p.locMVP, mvp)
	setMat4(p.locModel, model)
	setMat4(p.locModelInv, pose.Inverse())
	setVec3(p.locEye, eye)

	setVec3(p.locDiffuse, o.Material.Diffuse)
	setVec3(p.locSpecular, o.Material.Specular)
	setVec3(p.locAmbient, o.Material.Ambient)
	gl.Uniform1f(p.locShininess, float32(o.Material.Shininess))

	n := len(lights)
	if n > lighting.MaxLights {
		n = lighting.MaxLights
	}
	gl.Uniform1i(p.locLightCount, int32(n))
	for i := 0; i < n; i++ {
		setVec3(p.lights[i].ambient, lights[i].Ambient)
		setVec3(p.lights[i].radiance, lights[i].Radiance)
		setVec4(p.lights[i].position, lights[i].Position)
	}

	if p.locTexture >= 0 && m.texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, m.texture)
		gl.Uniform1i(p.locTexture, 0)
	}

	gl.BindVertexArray(m.vao)
	if m.strips > 0 {
		for i := int32(0); i < m.strips; i++ {
			gl.DrawArrays(gl.TRIANGLE_STRIP, i*m.perStrip, m.perStrip)
		}
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Destroy releases every GL object the renderer owns.
func (r *Renderer) Destroy() {
	for _, m := range r.meshes {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.texture != 0 {
			gl.DeleteTextures(1, &m.texture)
		}
	}
	r.meshes = make(map[*scene.Object]*mesh)

	if r.phong != nil {
		gl.DeleteProgram(r.phong.id)
		r.phong = nil
	}
	if r.terrain != nil {
		gl.DeleteProgram(r.terrain.id)
		r.terrain = nil
	}
}

func uploadSurface(mesh *surface.Mesh) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(unsafe.Sizeof(surface.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(stride),
		unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return vao, vbo
}

func uploadSolid(vertices []primitive.Vertex) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(unsafe.Sizeof(primitive.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride),
		unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// No texcoord attribute: the program samples its texture at the
	// default generic attribute value, a single texel.
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return vao, vbo
}

func uploadTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	return tex
}

// The simulation runs in float64; uniforms narrow to float32 at the GL
// boundary.

func setMat4(loc int32, m mgl64.Mat4) {
	var f mgl32.Mat4
	for i, v := range m {
		f[i] = float32(v)
	}
	gl.UniformMatrix4fv(loc, 1, false, &f[0])
}

func setVec3(loc int32, v mgl64.Vec3) {
	f := mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
	gl.Uniform3fv(loc, 1, &f[0])
}

func setVec4(loc int32, v mgl64.Vec4) {
	f := mgl32.Vec4{float32(v.X()), float32(v.Y()), float32(v.Z()), float32(v.W())}
	gl.Uniform4fv(loc, 1, &f[0])
}
