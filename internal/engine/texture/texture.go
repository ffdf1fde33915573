package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/sceneview/internal/engine/draw"
)

// Texture is an uploaded 2D texture.
type Texture struct {
	id     uint32
	width  int
	height int
	filter draw.Filter
}

// DefaultFilter is applied on upload.
var DefaultFilter = draw.Filter{Min: draw.FilterLinear, Mag: draw.FilterLinear}

// Upload creates a repeating texture from img without mipmaps.
func Upload(img *image.RGBA) *Texture {
	flipped := ToRGBA(img)
	if flipped == img {
		flipped = image.NewRGBA(img.Bounds())
		copy(flipped.Pix, img.Pix)
	}
	FlipVertical(flipped)

	t := &Texture{width: flipped.Bounds().Dx(), height: flipped.Bounds().Dy()}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.width), int32(t.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(flipped.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	t.SetFilter(DefaultFilter)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// Handle returns the GL texture name.
func (t *Texture) Handle() uint32 { return t.id }

// Size returns the texture dimensions.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Filter returns the current min/mag filters.
func (t *Texture) Filter() draw.Filter { return t.filter }

// SetFilter sets the min/mag filter pair.
func (t *Texture) SetFilter(f draw.Filter) {
	t.filter = f
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(f.Min))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(f.Mag))
}

func glFilter(m draw.FilterMode) int32 {
	if m == draw.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
