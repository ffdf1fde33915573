package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGAUncompressedBottomUp(t *testing.T) {
	// 2x2, 24bpp, rows stored bottom to top. BGR order.
	data := tgaHeader(2, 2, 2, 24, 0)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom row: red, green
		255, 0, 0, 255, 255, 255, // top row: blue, white
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 1, color.RGBA{255, 0, 0, 255}},
		{1, 1, color.RGBA{0, 255, 0, 255}},
		{0, 0, color.RGBA{0, 0, 255, 255}},
		{1, 0, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 3x1, 32bpp, top to bottom: one repeat packet of 2, one raw packet of 1.
	data := tgaHeader(10, 3, 1, 32, 0x20)
	data = append(data,
		0x81, 10, 20, 30, 128, // repeat 2x
		0x00, 1, 2, 3, 4, // raw 1
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA failed: %v", err)
	}
	want := []color.RGBA{{30, 20, 10, 128}, {30, 20, 10, 128}, {3, 2, 1, 4}}
	for x, w := range want {
		if got := img.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"colour mapped", func() []byte { h := tgaHeader(2, 1, 1, 24, 0); h[1] = 1; return h }()},
		{"grayscale type", tgaHeader(3, 1, 1, 8, 0)},
		{"16 bit", tgaHeader(2, 1, 1, 16, 0)},
		{"truncated pixels", append(tgaHeader(2, 2, 2, 24, 0), 1, 2, 3)},
		{"empty image", tgaHeader(2, 0, 0, 24, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 60), uint8(y * 200), 7, 255})
		}
	}
	return img
}

func TestDecodeSniffsFormats(t *testing.T) {
	src := testImage()

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}

	tests := []struct {
		name string
		data []byte
		ext  string
	}{
		{"png", pngBuf.Bytes(), ".png"},
		{"bmp", bmpBuf.Bytes(), ".bmp"},
		{"png with wrong extension", pngBuf.Bytes(), ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data, tt.ext)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
				t.Fatalf("unexpected bounds %v", img.Bounds())
			}
			if got := img.RGBAAt(3, 1); got != (color.RGBA{180, 200, 7, 255}) {
				t.Errorf("pixel (3,1) = %v", got)
			}
		})
	}

	if _, err := Decode([]byte("not an image"), ".png"); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestToRGBARebasesSubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(2, 2, color.RGBA{9, 8, 7, 255})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	out := ToRGBA(sub)
	if out.Bounds().Min != (image.Point{}) {
		t.Errorf("expected zero origin, got %v", out.Bounds())
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{9, 8, 7, 255}) {
		t.Errorf("pixel (0,0) = %v", got)
	}

	if ToRGBA(src) != src {
		t.Error("zero-origin RGBA should be returned as is")
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.SetRGBA(0, 0, color.RGBA{1, 0, 0, 255})
	img.SetRGBA(0, 2, color.RGBA{3, 0, 0, 255})

	FlipVertical(img)
	if img.RGBAAt(0, 0).R != 3 || img.RGBAAt(0, 2).R != 1 {
		t.Errorf("rows not swapped: %v %v", img.RGBAAt(0, 0), img.RGBAAt(0, 2))
	}
}
