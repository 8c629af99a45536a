package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Params holds sampling settings for an uploaded texture.
type Params struct {
	WrapS     int32
	WrapT     int32
	MinFilter int32
	MagFilter int32
	Mipmaps   bool
}

// DefaultParams repeats in both directions with trilinear filtering.
func DefaultParams() Params {
	return Params{
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_LINEAR,
		MagFilter: gl.LINEAR,
		Mipmaps:   true,
	}
}

// Texture owns a GL 2D texture object.
type Texture struct {
	id            uint32
	width, height int
}

// Upload creates a 2D RGBA texture from img. Rows are flipped so the first
// row of the file lands at t=1. Requires a current GL context.
func Upload(img *image.NRGBA, p Params) (*Texture, error) {
	flipped := FlipVertical(img)
	w, h := flipped.Rect.Dx(), flipped.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("texture: empty image %dx%d", w, h)
	}

	t := &Texture{width: w, height: h}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, p.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, p.WrapT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, p.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, p.MagFilter)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&flipped.Pix[0]))
	if p.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Bind binds the texture to texture unit unit (0 for GL_TEXTURE0).
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// Delete releases the texture. Safe to call more than once.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
