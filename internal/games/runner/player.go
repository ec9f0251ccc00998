package runner

import "github.com/vovakirdan/tux-runner/internal/config"

// Player is the runner character. Y is the height above the ground and
// never goes negative; the player is on the ground exactly when Y == 0.
type Player struct {
	Score     float64
	Size      float64
	Y         float64
	Gravity   float64
	VelocityY float64
	JumpPower float64

	hitbox  config.RunnerPlayer
	scoring config.RunnerScoring
}

// NewPlayer creates a player standing on the ground with the seed score.
func NewPlayer(cfg config.RunnerConfig) *Player {
	return &Player{
		Score:     cfg.Scoring.Seed,
		Size:      cfg.Player.Size,
		Gravity:   cfg.Physics.Gravity,
		JumpPower: cfg.Physics.JumpPower,
		hitbox:    cfg.Player,
		scoring:   cfg.Scoring,
	}
}

// Update advances the jump and the score by one tick.
func (p *Player) Update(jumpHeld bool, speed, delta float64) {
	p.jump(jumpHeld, delta)
	p.grow(speed, delta)
}

// jump starts a jump from the ground and integrates the arc.
// VelocityY is left stale on landing; the next jump overwrites it.
func (p *Player) jump(held bool, delta float64) {
	if held && p.Y == 0 {
		p.VelocityY = p.JumpPower
	}
	p.Y += p.VelocityY * delta

	if p.Y > 0 {
		p.VelocityY -= p.Gravity * delta
	} else {
		p.Y = 0
	}
}

func (p *Player) grow(speed, delta float64) {
	switch p.scoring.Mode {
	case config.ScoreCompound:
		p.Score += p.Score * speed
	default:
		p.Score += speed * delta
	}
}

// Grounded reports whether the player stands on the ground.
func (p *Player) Grounded() bool {
	return p.Y == 0
}

// Top returns the y coordinate of the sprite's top edge.
func (p *Player) Top(groundY float64) float64 {
	return groundY - p.Size - p.Y
}

// HitBox returns the collision box, inset from the sprite bounds.
func (p *Player) HitBox(groundY float64) HitBox {
	return NewHitBox(
		p.hitbox.HitboxX,
		p.Top(groundY)+p.hitbox.HitboxTop,
		p.Size-p.hitbox.HitboxShrinkW,
		p.Size-p.hitbox.HitboxShrinkH,
	)
}
