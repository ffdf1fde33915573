// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"image"
	stddraw "image/draw"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Decode decodes image data. TGA is selected by extension since it has no
// magic number; PNG, JPEG and BMP are sniffed.
func Decode(data []byte, ext string) (*image.RGBA, error) {
	if strings.EqualFold(ext, ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to a zero-origin *image.RGBA, returning it unchanged
// when it already is one.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, stddraw.Src)
	return rgba
}

// FlipVertical mirrors img top to bottom in place. GL expects the first row
// at the bottom.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}
