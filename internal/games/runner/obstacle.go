package runner

import "github.com/vovakirdan/tux-runner/internal/config"

// Obstacle is a ground obstacle scrolling from right to left.
type Obstacle struct {
	X       float64 // Left edge of the nominal bounding box
	Size    float64
	Scale   float64 // Hitbox margin is Scale/2
	Variant int     // Sprite variant, fixed at spawn
	Debug   bool    // Outline the hitbox when the diagnostics overlay is on
}

// NewObstacle creates an obstacle with its left edge at x.
func NewObstacle(x float64, cfg config.RunnerObstacles, variant int, debug bool) Obstacle {
	return Obstacle{
		X:       x,
		Size:    cfg.Size,
		Scale:   cfg.Scale,
		Variant: variant,
		Debug:   debug,
	}
}

// Update moves the obstacle left by step world units.
func (o *Obstacle) Update(step float64) {
	o.X -= step
}

// OffScreen reports whether the obstacle has fully left the left edge.
func (o *Obstacle) OffScreen() bool {
	return o.X+o.Size < 0
}

// HitBox returns the collision box, inset by Scale/2 from the nominal box.
func (o *Obstacle) HitBox(groundY float64) HitBox {
	m := o.Scale / 2
	return NewHitBox(o.X+m, groundY-o.Size+m, o.Size-m, o.Size-m)
}
