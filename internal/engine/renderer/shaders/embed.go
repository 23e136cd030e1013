// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WireVertexShader transforms world-space strip vertices.
//
//go:embed wire.vert
var WireVertexShader string

// WireFragmentShader fills rasterized edges with the stroke color.
//
//go:embed wire.frag
var WireFragmentShader string
