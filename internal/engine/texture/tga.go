// Package texture decodes image files into pixel buffers and uploads them as
// OpenGL 2D textures.
package texture

import (
	"fmt"
	"image"
)

// TGA image types handled by DecodeTGA.
const (
	TGATypeUncompressed = 2  // true-color
	TGATypeGray         = 3  // grayscale
	TGATypeRLE          = 10 // RLE true-color
	TGATypeRLEGray      = 11 // RLE grayscale
)

// DecodeTGA decodes an uncompressed or RLE compressed true-color (24/32 bit)
// or grayscale (8 bit) TGA image. Color-mapped images are rejected.
func DecodeTGA(data []byte) (*image.NRGBA, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: header truncated")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	gray := imageType == TGATypeGray || imageType == TGATypeRLEGray
	rle := imageType == TGATypeRLE || imageType == TGATypeRLEGray
	switch {
	case imageType == TGATypeUncompressed || imageType == TGATypeRLE:
		if bpp != 24 && bpp != 32 {
			return nil, fmt.Errorf("tga: unsupported true-color depth %d", bpp)
		}
	case gray:
		if bpp != 8 {
			return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
		}
	default:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("tga: empty image %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: id field truncated")
	}

	d := tgaDecoder{
		img:         image.NewNRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bpp:         bpp / 8,
		gray:        gray,
		width:       width,
		height:      height,
		topToBottom: descriptor&0x20 != 0,
	}

	var err error
	if rle {
		err = d.decodeRLE()
	} else {
		err = d.decodeRaw()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.NRGBA
	src         []byte
	pos         int
	bpp         int
	gray        bool
	width       int
	height      int
	topToBottom bool
}

// pixel reads one BGR(A) or gray pixel from the stream as RGBA.
func (d *tgaDecoder) pixel() ([4]byte, bool) {
	if d.pos+d.bpp > len(d.src) {
		return [4]byte{}, false
	}
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp
	if d.gray {
		return [4]byte{p[0], p[0], p[0], 255}, true
	}
	c := [4]byte{p[2], p[1], p[0], 255}
	if d.bpp == 4 {
		c[3] = p[3]
	}
	return c, true
}

// put stores the n-th pixel of the file, which is stored bottom-up unless
// the descriptor says otherwise.
func (d *tgaDecoder) put(n int, c [4]byte) {
	x, y := n%d.width, n/d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	i := d.img.PixOffset(x, y)
	copy(d.img.Pix[i:i+4], c[:])
}

func (d *tgaDecoder) decodeRaw() error {
	total := d.width * d.height
	if len(d.src) < total*d.bpp {
		return fmt.Errorf("tga: pixel data truncated")
	}
	for n := 0; n < total; n++ {
		c, _ := d.pixel()
		d.put(n, c)
	}
	return nil
}

func (d *tgaDecoder) decodeRLE() error {
	total := d.width * d.height
	n := 0
	for n < total {
		if d.pos >= len(d.src) {
			return fmt.Errorf("tga: RLE data truncated at pixel %d of %d", n, total)
		}
		header := d.src[d.pos]
		d.pos++
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			c, ok := d.pixel()
			if !ok {
				return fmt.Errorf("tga: RLE packet truncated")
			}
			for k := 0; k < count && n < total; k++ {
				d.put(n, c)
				n++
			}
			continue
		}

		for k := 0; k < count && n < total; k++ {
			c, ok := d.pixel()
			if !ok {
				return fmt.Errorf("tga: raw packet truncated")
			}
			d.put(n, c)
			n++
		}
	}
	return nil
}
