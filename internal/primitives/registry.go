package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material kinds. Basic is unlit (flat color, optional alpha); Lit is shaded by the hemisphere light.
const (
	Basic = "basic"
	Lit   = "lit"
)

// groundPlaneRes: 1 subdivision = single quad.
const groundPlaneRes = 1

// Fog fades fragments toward Color between Near and Far (world units from the camera).
type Fog struct {
	Color rl.Color
	Near  float32
	Far   float32
}

// Hemisphere is a sky/ground gradient light: normals pointing up get Sky, pointing down get Ground.
type Hemisphere struct {
	Sky       rl.Color
	Ground    rl.Color
	Intensity float32
}

// cached holds a mesh and material pair. Created lazily on first draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps (shape, material) keys to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache   map[string]cached
	viewPos rl.Vector3
	fog     Fog
	light   Hemisphere
}

// NewRegistry returns a registry with the given fog and light. Nothing is loaded until the first draw.
func NewRegistry(fog Fog, light Hemisphere) *Registry {
	return &Registry{
		cache: make(map[string]cached),
		fog:   fog,
		light: light,
	}
}

// SetView sets the camera position for this frame. Call once per frame before drawing so fog and shading are correct.
func (r *Registry) SetView(viewPos rl.Vector3) {
	r.viewPos = viewPos
}

// ensure creates the mesh and material for key if not yet cached.
func (r *Registry) ensure(key string, gen func() rl.Mesh, material string) cached {
	if c, ok := r.cache[key]; ok {
		return c
	}
	mtl := rl.LoadMaterialDefault()
	var shader rl.Shader
	if material == Lit {
		shader = rl.LoadShaderFromMemory(vertexShader, litFS)
	} else {
		shader = rl.LoadShaderFromMemory(vertexShader, basicFS)
	}
	if rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: gen(), mtl: mtl}
	r.cache[key] = c
	return c
}

// DrawCube draws a unit cube transformed by transform with a flat (unlit, fogged) color.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawCube(transform rl.Matrix, color rl.Color) {
	c := r.ensure("cube/"+Basic, func() rl.Mesh { return rl.GenMeshCube(1, 1, 1) }, Basic)
	r.draw(c, transform, color)
}

// DrawGround draws a size×size plane at y=0 shaded by the hemisphere light.
func (r *Registry) DrawGround(size float32, color rl.Color) {
	c := r.ensure("plane/"+Lit, func() rl.Mesh { return rl.GenMeshPlane(1, 1, groundPlaneRes, groundPlaneRes) }, Lit)
	r.draw(c, rl.MatrixScale(size, 1, size), color)
}

func (r *Registry) draw(c cached, transform rl.Matrix, color rl.Color) {
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// setUniforms sets view position, fog and light on the shader (cgo-safe: local slices).
// Uniforms a shader does not declare are skipped.
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	vec3 := func(name string, v []float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, 1)
		}
	}
	float := func(name string, v float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	vec3("viewPos", []float32{r.viewPos.X, r.viewPos.Y, r.viewPos.Z})
	vec3("fogColor", colorVec(r.fog.Color))
	float("fogNear", r.fog.Near)
	float("fogFar", r.fog.Far)
	vec3("skyColor", colorVec(r.light.Sky))
	vec3("groundColor", colorVec(r.light.Ground))
	float("lightIntensity", r.light.Intensity)
}

// colorVec converts an 8-bit color to normalized RGB.
func colorVec(c rl.Color) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// Unload releases all cached GPU resources. Call before closing the window.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, k)
	}
}
