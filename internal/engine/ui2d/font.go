package ui2d

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	drawframe "github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/texture"
)

const (
	firstGlyph    = 32
	lastGlyph     = 126
	atlasColumns  = 16
	fallbackGlyph = '?'
)

// Font is a fixed-width bitmap font packed into one texture.
type Font struct {
	face   *basicfont.Face
	atlas  *image.RGBA
	tex    *texture.Texture
	glyphW int
	glyphH int
}

// NewFont rasterizes the 7x13 basic font and uploads it.
func NewFont() *Font {
	f := NewFontAtlas()
	f.tex = texture.Upload(f.atlas)
	f.tex.SetFilter(drawframe.Filter{Min: drawframe.FilterNearest, Mag: drawframe.FilterNearest})
	return f
}

// NewFontAtlas rasterizes the 7x13 basic font without touching OpenGL.
func NewFontAtlas() *Font {
	return newFontAtlas(basicfont.Face7x13)
}

// newFontAtlas draws printable ASCII into a grid of glyph cells, white on
// transparent.
func newFontAtlas(face *basicfont.Face) *Font {
	gw := face.Advance
	gh := face.Height
	rows := (lastGlyph - firstGlyph + atlasColumns) / atlasColumns

	atlas := image.NewRGBA(image.Rect(0, 0, atlasColumns*gw, rows*gh))
	d := &font.Drawer{Dst: atlas, Src: image.White, Face: face}

	for ch := firstGlyph; ch <= lastGlyph; ch++ {
		i := ch - firstGlyph
		cx, cy := i%atlasColumns, i/atlasColumns
		d.Dot = fixed.P(cx*gw, cy*gh+face.Ascent)
		d.DrawString(string(rune(ch)))
	}

	return &Font{face: face, atlas: atlas, glyphW: gw, glyphH: gh}
}

// GlyphSize returns the cell size in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.glyphW, f.glyphH
}

// GetGlyphUV returns texture coordinates for ch. The atlas is stored flipped,
// so v decreases downward.
func (f *Font) GetGlyphUV(ch rune) (u0, v0, u1, v1 float32) {
	if ch < firstGlyph || ch > lastGlyph {
		ch = fallbackGlyph
	}
	i := int(ch) - firstGlyph
	cx, cy := i%atlasColumns, i/atlasColumns

	b := f.atlas.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	u0 = float32(cx*f.glyphW) / w
	u1 = float32((cx+1)*f.glyphW) / w
	v0 = 1 - float32(cy*f.glyphH)/h
	v1 = 1 - float32((cy+1)*f.glyphH)/h
	return u0, v0, u1, v1
}

// MeasureText returns the width of the longest line and total height.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	lines, longest, cur := 1, 0, 0
	for _, ch := range text {
		if ch == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return float32(longest*f.glyphW) * scale, float32(lines*f.glyphH) * scale
}

// TextureID returns the GL texture name of the atlas.
func (f *Font) TextureID() uint32 {
	if f.tex == nil {
		return 0
	}
	return f.tex.Handle()
}

// Close releases the atlas texture.
func (f *Font) Close() {
	if f.tex != nil {
		f.tex.Delete()
		f.tex = nil
	}
}
