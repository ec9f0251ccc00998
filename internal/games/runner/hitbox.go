package runner

import (
	"fmt"
	"math"
)

// HitBox is an axis-aligned collision rectangle in world units.
// Owners derive a fresh one every frame; it is never mutated.
type HitBox struct {
	X, Y float64
	W, H float64
}

// NewHitBox builds a hitbox. Negative extents are a logic error: builds
// with the runnerdebug tag panic, other builds clamp them to zero.
func NewHitBox(x, y, w, h float64) HitBox {
	if w < 0 || h < 0 {
		if strictGeometry {
			panic(fmt.Sprintf("runner: negative hitbox extent %gx%g", w, h))
		}
		w = math.Max(w, 0)
		h = math.Max(h, 0)
	}
	return HitBox{X: x, Y: y, W: w, H: h}
}

// IsColliding reports whether two hitboxes overlap.
// Boxes that only share an edge do not collide.
func IsColliding(a, b HitBox) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

func (h HitBox) String() string {
	return fmt.Sprintf("x=%g, y=%g, w=%g, h=%g", h.X, h.Y, h.W, h.H)
}
