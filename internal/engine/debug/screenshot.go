// Package debug provides developer helpers for the running scenes.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes framebuffer captures as PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots creates a writer saving into dir, which is created on the
// first capture. Files are named <prefix>_<timestamp>.png.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture will be written to.
func (s *Screenshots) Filename() string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	name := fmt.Sprintf("%s_%s.png", s.prefix, timestamp)
	if s.dir != "" {
		name = filepath.Join(s.dir, name)
	}
	return name
}

// SavePixels writes RGBA pixels read from the bottom-left origin of a GL
// framebuffer, flipping rows so the file is upright.
func (s *Screenshots) SavePixels(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d for %dx%d, got %d",
			width*height*4, width, height, len(pixels))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return s.Save(img)
}

// Save writes img and returns the path.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}
