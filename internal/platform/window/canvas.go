package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tux-runner/internal/canvas"
	"github.com/vovakirdan/tux-runner/internal/core"
)

// strokeWidth is the outline width for StrokeRect in pixels.
const strokeWidth = 2

// SpriteSource provides decoded sprite images.
type SpriteSource interface {
	Image(s canvas.Sprite) (image.Image, bool)
}

// WindowCanvas draws onto an ebiten image. One world unit is one pixel.
type WindowCanvas struct {
	canvas.TransformStack

	dst     *ebiten.Image
	sprites SpriteSource
	images  map[canvas.Sprite]*ebiten.Image
	face    *text.GoXFace
}

// NewWindowCanvas creates a canvas that draws sprites from src.
func NewWindowCanvas(src SpriteSource) *WindowCanvas {
	c := &WindowCanvas{
		sprites: src,
		images:  make(map[canvas.Sprite]*ebiten.Image),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	c.ResetTransform()
	return c
}

// Begin targets dst for the next frame.
func (c *WindowCanvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.ResetTransform()
}

// Size returns the target size in pixels.
func (c *WindowCanvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear makes the target transparent.
func (c *WindowCanvas) Clear() {
	c.dst.Clear()
}

// FillRect fills the transformed rectangle.
func (c *WindowCanvas) FillRect(x, y, w, h float64, col core.Color) {
	x, y, w, h, _, _ = c.Current().ApplyRect(x, y, w, h)
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col.RGBA(), false)
}

// StrokeRect outlines the transformed rectangle.
func (c *WindowCanvas) StrokeRect(x, y, w, h float64, col core.Color) {
	x, y, w, h, _, _ = c.Current().ApplyRect(x, y, w, h)
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), strokeWidth, col.RGBA(), false)
}

// fontScale maps a text size in pixels onto the bitmap face.
func (c *WindowCanvas) fontScale(size float64) float64 {
	m := c.face.Metrics()
	return size / (m.HAscent + m.HDescent)
}

// FillText draws text with its baseline at y, scaling the bitmap font to size.
func (c *WindowCanvas) FillText(str string, x, y, size float64, col core.Color) {
	scale := c.fontScale(size)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-c.face.Metrics().HAscent*scale)
	c.applyTransform(&op.GeoM)
	op.ColorScale.ScaleWithColor(col.RGBA())
	text.Draw(c.dst, str, c.face, op)
}

// MeasureText returns the advance of str at size.
func (c *WindowCanvas) MeasureText(str string, size float64) float64 {
	return text.Advance(str, c.face) * c.fontScale(size)
}

// LineHeight returns size: lines are packed without extra leading.
func (c *WindowCanvas) LineHeight(size float64) float64 {
	return size
}

// DrawSprite scales the sprite into the rectangle. Sprites still loading
// or unavailable are skipped.
func (c *WindowCanvas) DrawSprite(s canvas.Sprite, x, y, w, h float64) {
	img := c.image(s)
	if img == nil {
		return
	}
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	c.applyTransform(&op.GeoM)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// image uploads a decoded sprite on first use.
func (c *WindowCanvas) image(s canvas.Sprite) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	src, ok := c.sprites.Image(s)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	c.images[s] = img
	return img
}

func (c *WindowCanvas) applyTransform(g *ebiten.GeoM) {
	t := c.Current()
	g.Scale(t.SX, t.SY)
	g.Translate(t.TX, t.TY)
}

var _ canvas.Canvas = (*WindowCanvas)(nil)
