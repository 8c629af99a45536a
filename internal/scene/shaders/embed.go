// Package shaders holds the GLSL sources of the built-in scenes. Each scene
// has a <name>.vert and <name>.frag pair.
package shaders

import "embed"

// FS holds every stage source.
//
//go:embed *.vert *.frag
var FS embed.FS
