package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
}

func TestFilename(t *testing.T) {
	s := NewScreenshots("shots", "cubes")
	s.now = fixedClock
	assert.Equal(t, filepath.Join("shots", "cubes_2024-05-01_12-30-00.000.png"), s.Filename())

	s = NewScreenshots("", "cubes")
	s.now = fixedClock
	assert.Equal(t, "cubes_2024-05-01_12-30-00.000.png", s.Filename())
}

func TestSavePixelsFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewScreenshots(dir, "shot")
	s.now = fixedClock

	// Row 0 is the bottom of the framebuffer: red. Row 1 is blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := s.SavePixels(pixels, 1, 2)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), b, "top row of the file is the top of the framebuffer")
	r, _, _, _ = img.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestSavePixelsSizeMismatch(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "shot")
	_, err := s.SavePixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
	_, err = s.SavePixels(nil, 0, 0)
	assert.Error(t, err)
}
