package texture

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// TGA image types.
const (
	tgaUncompressed = 2
	tgaRLE          = 10
)

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-colour TGA
// images with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, errors.New("tga: header truncated")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, errors.New("tga: colour-mapped images not supported")
	}
	if imageType != tgaUncompressed && imageType != tgaRLE {
		return nil, errors.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, errors.Errorf("tga: unsupported bit depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, errors.Errorf("tga: empty image %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errors.New("tga: id field truncated")
	}
	pixelData := data[offset:]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bytesPerPixel := bpp / 8

	// Bit 5 of the descriptor: rows stored top to bottom.
	topToBottom := (descriptor & 0x20) != 0

	put := func(idx int, c color.RGBA) {
		x, y := idx%width, idx/width
		if !topToBottom {
			y = height - 1 - y
		}
		img.SetRGBA(x, y, c)
	}

	if imageType == tgaUncompressed {
		expectedSize := width * height * bytesPerPixel
		if len(pixelData) < expectedSize {
			return nil, errors.Errorf("tga: pixel data truncated (%d of %d bytes)", len(pixelData), expectedSize)
		}
		for idx := 0; idx < width*height; idx++ {
			put(idx, tgaPixel(pixelData[idx*bytesPerPixel:], bytesPerPixel))
		}
		return img, nil
	}

	decodeTGARLE(pixelData, width*height, bytesPerPixel, put)
	return img, nil
}

// tgaPixel reads one BGR(A) pixel.
func tgaPixel(p []byte, bytesPerPixel int) color.RGBA {
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if bytesPerPixel == 4 {
		c.A = p[3]
	}
	return c
}

// decodeTGARLE expands RLE packets through put. Short input leaves the
// remaining pixels transparent.
func decodeTGARLE(data []byte, pixelCount, bytesPerPixel int, put func(int, color.RGBA)) {
	pixelIdx, dataIdx := 0, 0
	for pixelIdx < pixelCount && dataIdx < len(data) {
		packet := data[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1
		repeat := packet&0x80 != 0

		for i := 0; i < count && pixelIdx < pixelCount; i++ {
			if dataIdx+bytesPerPixel > len(data) {
				return
			}
			put(pixelIdx, tgaPixel(data[dataIdx:], bytesPerPixel))
			pixelIdx++
			if !repeat {
				dataIdx += bytesPerPixel
			}
		}
		if repeat {
			dataIdx += bytesPerPixel
		}
	}
}
