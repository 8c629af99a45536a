package mesh

import "fmt"

// Layout describes interleaved float vertex attributes. Entry i is the
// component count of the attribute bound to location i.
type Layout []int32

// Stride returns the byte size of one vertex.
func (l Layout) Stride() int32 {
	var n int32
	for _, size := range l {
		n += size
	}
	return n * floatSize
}

// Offset returns the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) uintptr {
	var n int32
	for _, size := range l[:i] {
		n += size
	}
	return uintptr(n * floatSize)
}

// Components returns the float count of one vertex.
func (l Layout) Components() int {
	return int(l.Stride() / floatSize)
}

// Validate checks that vertices holds a whole number of vertices and that
// every index points at one of them.
func (l Layout) Validate(vertices []float32, indices []uint32) error {
	if len(l) == 0 {
		return fmt.Errorf("empty vertex layout")
	}
	for i, size := range l {
		if size < 1 || size > 4 {
			return fmt.Errorf("attribute %d: size %d out of range 1..4", i, size)
		}
	}
	per := l.Components()
	if len(vertices) == 0 || len(vertices)%per != 0 {
		return fmt.Errorf("%d floats is not a multiple of %d per vertex", len(vertices), per)
	}
	count := uint32(len(vertices) / per)
	for i, idx := range indices {
		if idx >= count {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, count)
		}
	}
	return nil
}

const floatSize = 4
