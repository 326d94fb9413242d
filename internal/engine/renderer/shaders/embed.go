// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader is the vertex shader for textured specular objects.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader is the fragment shader for textured specular objects.
//
//go:embed phong.frag
var PhongFragmentShader string

// TerrainVertexShader is the vertex shader for the height-tinted terrain.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for the height-tinted terrain.
//
//go:embed terrain.frag
var TerrainFragmentShader string
