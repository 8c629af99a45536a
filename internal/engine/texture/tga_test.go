package texture

import (
	"image/color"
	"testing"
)

func tgaHeader(imageType, width, height, bpp int, descriptor byte) []byte {
	h := make([]byte, 18)
	h[2] = byte(imageType)
	h[12], h[13] = byte(width), byte(width>>8)
	h[14], h[15] = byte(height), byte(height>>8)
	h[16] = byte(bpp)
	h[17] = descriptor
	return h
}

func TestDecodeTGAUncompressedBottomUp(t *testing.T) {
	// 2x2, 24 bit, stored bottom row first (BGR)
	data := tgaHeader(TGATypeUncompressed, 2, 2, 24, 0)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}

	want := map[[2]int]color.NRGBA{
		{0, 1}: {255, 0, 0, 255},
		{1, 1}: {0, 255, 0, 255},
		{0, 0}: {0, 0, 255, 255},
		{1, 0}: {255, 255, 255, 255},
	}
	for p, c := range want {
		if got := img.NRGBAAt(p[0], p[1]); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestDecodeTGATopDownAlpha(t *testing.T) {
	data := tgaHeader(TGATypeUncompressed, 1, 2, 32, 0x20)
	data = append(data,
		10, 20, 30, 40, // top
		50, 60, 70, 80, // bottom
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{30, 20, 10, 40}) {
		t.Errorf("top pixel = %v", got)
	}
	if got := img.NRGBAAt(0, 1); got != (color.NRGBA{70, 60, 50, 80}) {
		t.Errorf("bottom pixel = %v", got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1: run of two red, then one raw blue
	data := tgaHeader(TGATypeRLE, 3, 1, 24, 0x20)
	data = append(data,
		0x81, 0, 0, 255, // run packet, 2 pixels
		0x00, 255, 0, 0, // raw packet, 1 pixel
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	for x, want := range []color.NRGBA{red, red, blue} {
		if got := img.NRGBAAt(x, 0); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestDecodeTGAGray(t *testing.T) {
	data := tgaHeader(TGATypeRLEGray, 2, 1, 8, 0x20)
	data = append(data, 0x81, 128)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{128, 128, 128, 255}) {
		t.Errorf("gray pixel = %v", got)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", make([]byte, 10)},
		{"color mapped", func() []byte { h := tgaHeader(1, 1, 1, 8, 0); h[1] = 1; return h }()},
		{"unsupported type", tgaHeader(9, 1, 1, 8, 0)},
		{"bad depth", tgaHeader(TGATypeUncompressed, 1, 1, 16, 0)},
		{"empty", tgaHeader(TGATypeUncompressed, 0, 1, 24, 0)},
		{"truncated raw", append(tgaHeader(TGATypeUncompressed, 2, 2, 24, 0), 1, 2, 3)},
		{"truncated rle", append(tgaHeader(TGATypeRLE, 4, 1, 24, 0), 0x81, 1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
