package mesh

import "testing"

func TestLayoutStrideAndOffset(t *testing.T) {
	l := Layout{3, 3, 2}

	if got := l.Stride(); got != 32 {
		t.Errorf("Stride() = %d, want 32", got)
	}
	if got := l.Components(); got != 8 {
		t.Errorf("Components() = %d, want 8", got)
	}

	offsets := []uintptr{0, 12, 24}
	for i, want := range offsets {
		if got := l.Offset(i); got != want {
			t.Errorf("Offset(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		vertices []float32
		indices  []uint32
		wantErr  bool
	}{
		{"ok", Layout{3}, make([]float32, 9), []uint32{0, 1, 2}, false},
		{"no indices", Layout{3, 2}, make([]float32, 15), nil, false},
		{"empty layout", Layout{}, make([]float32, 3), nil, true},
		{"bad size", Layout{5}, make([]float32, 5), nil, true},
		{"partial vertex", Layout{3}, make([]float32, 8), nil, true},
		{"no vertices", Layout{3}, nil, nil, true},
		{"index out of range", Layout{3}, make([]float32, 9), []uint32{0, 1, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate(tt.vertices, tt.indices)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShapesAreValid(t *testing.T) {
	shapes := map[string]func() (Layout, []float32, []uint32){
		"rectangle":     Rectangle,
		"textured quad": TexturedQuad,
		"cube":          Cube,
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			layout, vertices, indices := shape()
			if err := layout.Validate(vertices, indices); err != nil {
				t.Fatalf("invalid geometry: %v", err)
			}
		})
	}

	_, cube, _ := Cube()
	if n := len(cube) / 5; n != 36 {
		t.Errorf("cube has %d vertices, want 36", n)
	}
}
