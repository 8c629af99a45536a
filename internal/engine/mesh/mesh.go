// Package mesh uploads interleaved vertex data to OpenGL buffers.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh owns a vertex array with its vertex buffer and optional element buffer.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// New uploads vertices laid out per layout. With indices it draws with
// DrawElements, otherwise with DrawArrays over every vertex.
// Requires a current GL context.
func New(layout Layout, vertices []float32, indices []uint32) (*Mesh, error) {
	if err := layout.Validate(vertices, indices); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}

	m := &Mesh{}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
		m.count = int32(len(indices))
		m.indexed = true
	} else {
		m.count = int32(len(vertices) / layout.Components())
	}

	stride := layout.Stride()
	for i, size := range layout {
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, stride, layout.Offset(i))
		gl.EnableVertexAttribArray(uint32(i))
	}

	// The VAO keeps the EBO binding, so only the array buffer is unbound
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m, nil
}

// Draw binds the vertex array and draws it as triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL objects. Safe to call more than once.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
