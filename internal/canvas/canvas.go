// Package canvas defines the 2D immediate-mode drawing surface games render
// into, plus a terminal implementation on top of core.Screen.
//
// Coordinates are world units. Each implementation decides how world units
// map onto its pixels or cells.
package canvas

import (
	"fmt"

	"github.com/vovakirdan/tux-runner/internal/core"
)

// Sprite identifies one of the fixed images a game can draw.
type Sprite int

const (
	SpritePlayer Sprite = iota
	SpriteObstacle0
	SpriteObstacle1
	SpriteObstacle2
	SpriteObstacle3
)

// ObstacleVariants is the number of obstacle sprites.
const ObstacleVariants = 4

// ObstacleSprite returns the sprite for an obstacle variant index.
// Out-of-range indexes wrap around.
func ObstacleSprite(variant int) Sprite {
	v := variant % ObstacleVariants
	if v < 0 {
		v += ObstacleVariants
	}
	return SpriteObstacle0 + Sprite(v)
}

// AssetName returns the file name the sprite is loaded from.
func (s Sprite) AssetName() string {
	if s == SpritePlayer {
		return "tux.png"
	}
	return fmt.Sprintf("%d.png", int(s-SpriteObstacle0))
}

// Canvas is the drawing surface.
// Drawing calls are subject to the current transform (see Translate, Scale).
type Canvas interface {
	// Size returns the drawable area in world units.
	Size() (w, h float64)

	Clear()
	FillRect(x, y, w, h float64, c core.Color)
	StrokeRect(x, y, w, h float64, c core.Color)

	// FillText draws text with its baseline at y.
	FillText(text string, x, y, size float64, c core.Color)
	// MeasureText returns the width FillText would use for text at size.
	MeasureText(text string, size float64) float64
	// LineHeight returns the vertical advance between lines of text at size.
	LineHeight(size float64) float64

	// DrawSprite draws the sprite scaled into the rectangle.
	// A sprite that is not available yet draws nothing.
	DrawSprite(s Sprite, x, y, w, h float64)

	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)
}
