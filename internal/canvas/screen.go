package canvas

import (
	"math"

	"github.com/vovakirdan/tux-runner/internal/core"
)

// ScreenCanvas draws into a terminal character buffer.
// One cell covers cellW x cellH world units. Text size is ignored:
// every character takes one cell.
type ScreenCanvas struct {
	TransformStack

	screen *core.Screen
	cellW  float64
	cellH  float64
}

// NewScreenCanvas wraps a screen. Non-positive cell sizes default to 1.
func NewScreenCanvas(s *core.Screen, cellW, cellH float64) *ScreenCanvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	c := &ScreenCanvas{screen: s, cellW: cellW, cellH: cellH}
	c.ResetTransform()
	return c
}

// Size returns the screen size in world units.
func (c *ScreenCanvas) Size() (float64, float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// Clear blanks the screen.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// cellRect maps a world rectangle onto whole cells.
// A rectangle with positive extent always covers at least one cell.
func (c *ScreenCanvas) cellRect(x, y, w, h float64) (core.Rect, bool, bool) {
	x, y, w, h, flipX, flipY := c.Current().ApplyRect(x, y, w, h)

	x0 := int(math.Round(x / c.cellW))
	x1 := int(math.Round((x + w) / c.cellW))
	y0 := int(math.Round(y / c.cellH))
	y1 := int(math.Round((y + h) / c.cellH))
	if x1 == x0 && w > 0 {
		x1++
	}
	if y1 == y0 && h > 0 {
		y1++
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), flipX, flipY
}

// FillRect paints cell backgrounds. Opaque colors also erase the characters,
// translucent ones tint the background and keep them.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, col core.Color) {
	r, _, _ := c.cellRect(x, y, w, h)
	r = r.Intersect(c.screen.Bounds())
	opaque := col.RGBA().A == 0xff
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			if opaque {
				c.screen.SetCell(cx, cy, core.Cell{Rune: ' ', Background: col})
			} else {
				c.screen.SetBackground(cx, cy, col)
			}
		}
	}
}

// StrokeRect outlines the rectangle with box-drawing characters.
func (c *ScreenCanvas) StrokeRect(x, y, w, h float64, col core.Color) {
	r, _, _ := c.cellRect(x, y, w, h)
	if r.Empty() {
		return
	}
	if r.W < 2 || r.H < 2 {
		for cy := r.Y; cy < r.Bottom(); cy++ {
			for cx := r.X; cx < r.Right(); cx++ {
				c.screen.SetColored(cx, cy, '·', col)
			}
		}
		return
	}

	c.screen.DrawBox(r, col)
}

// FillText writes text on the row containing the baseline.
func (c *ScreenCanvas) FillText(text string, x, y, _ float64, col core.Color) {
	wx, wy := c.Current().Apply(x, y)
	cx := int(math.Round(wx / c.cellW))
	cy := int(math.Ceil(wy/c.cellH)) - 1
	i := 0
	for _, r := range text {
		c.screen.SetColored(cx+i, cy, r, col)
		i++
	}
}

// MeasureText returns one cell width per character.
func (c *ScreenCanvas) MeasureText(text string, _ float64) float64 {
	return float64(len([]rune(text))) * c.cellW
}

// LineHeight is one row regardless of size.
func (c *ScreenCanvas) LineHeight(_ float64) float64 {
	return c.cellH
}

// DrawSprite draws the sprite's glyph art stretched over the covered cells.
func (c *ScreenCanvas) DrawSprite(s Sprite, x, y, w, h float64) {
	art, ok := glyphs[s]
	if !ok {
		return
	}
	r, flipX, flipY := c.cellRect(x, y, w, h)
	vis := r.Intersect(c.screen.Bounds())
	for cy := vis.Y; cy < vis.Bottom(); cy++ {
		for cx := vis.X; cx < vis.Right(); cx++ {
			ch := art.at(cx-r.X, cy-r.Y, r.W, r.H, flipX, flipY)
			if ch == ' ' {
				continue
			}
			c.screen.SetColored(cx, cy, ch, art.color)
		}
	}
}

var _ Canvas = (*ScreenCanvas)(nil)
