package runner

import (
	"fmt"

	"github.com/vovakirdan/tux-runner/internal/canvas"
	"github.com/vovakirdan/tux-runner/internal/core"
)

const (
	textSize  = 32
	titleSize = 48
	debugSize = 18

	startPrompt   = "CLICK / TAP TO START"
	restartPrompt = "CLICK / TAP TO RESTART"
	loseTitle     = "YOU LOSE"
)

// Draw renders the current phase onto any canvas.
func (g *Game) Draw(c canvas.Canvas) {
	switch g.phase {
	case PhaseStart:
		g.drawStart(c)
	case PhasePlaying:
		g.drawPlaying(c)
	case PhaseStop:
		// The losing frame stays visible under the panel
		g.drawPlaying(c)
		g.drawStop(c)
	}
}

func (g *Game) drawStart(c canvas.Canvas) {
	c.Clear()
	w, h := c.Size()
	c.FillText(startPrompt, w/2-c.MeasureText(startPrompt, textSize)/2, h/2-6, textSize, core.ColorSnow)
	if g.debug {
		g.drawDebug(c)
	}
}

func (g *Game) drawPlaying(c canvas.Canvas) {
	w, h := c.Size()
	c.Clear()
	c.FillRect(0, 0, w, h, core.ColorSky)

	score := fmt.Sprintf("Score: %d", g.score())
	c.FillText(score, w-c.MeasureText(score, textSize)-textSize/4, textSize, textSize, core.ColorInk)

	g.drawPlayer(c)
	for i := 0; i < g.obstacles.Len(); i++ {
		g.drawObstacle(c, g.obstacles.At(i))
	}

	if g.debug {
		g.drawDebug(c)
	}
}

// drawPlayer draws the sprite mirrored so the player faces right.
func (g *Game) drawPlayer(c canvas.Canvas) {
	p := g.player
	c.Save()
	c.Translate(p.Size, 0)
	c.Scale(-1, 1)
	c.DrawSprite(canvas.SpritePlayer, 0, p.Top(g.worldH), p.Size, p.Size)
	c.Restore()
}

// drawObstacle draws a white backing plate and the sprite over the hitbox.
func (g *Game) drawObstacle(c canvas.Canvas, o *Obstacle) {
	hb := o.HitBox(g.worldH)
	c.FillRect(hb.X, hb.Y, hb.W, hb.H, core.ColorWhite)
	c.DrawSprite(canvas.ObstacleSprite(o.Variant), hb.X, hb.Y, hb.W, hb.H)
}

func (g *Game) drawStop(c canvas.Canvas) {
	w, h := c.Size()
	c.FillRect(w/4, h/4, w/2, h/2, core.ColorInk)

	c.FillText(loseTitle, w/2-c.MeasureText(loseTitle, titleSize)/2, h/2-titleSize, titleSize, core.ColorWhite)

	score := fmt.Sprintf("Score: %d", g.score())
	c.FillText(score, w/2-c.MeasureText(score, textSize)/2, h/2-6, textSize, core.ColorWhite)

	bw := c.MeasureText(restartPrompt, textSize)
	c.FillRect(w/2-bw/2-10, h/2+50, bw+20, 50, core.ColorWhite)
	c.FillText(restartPrompt, w/2-bw/2, h/2+85, textSize, core.ColorBlack)
}

// drawDebug prints the diagnostics block and outlines the hitboxes.
func (g *Game) drawDebug(c canvas.Canvas) {
	ph := g.player.HitBox(g.worldH)
	lines := []string{
		fmt.Sprintf("Speed: %.5f", g.speed),
		fmt.Sprintf("FPS: %d  Delta: %.3f", g.clock.FPS(), g.clock.Delta()),
		fmt.Sprintf("HitBox: %s", ph),
	}
	if o := g.obstacles.Oldest(); o != nil {
		lines = append(lines,
			fmt.Sprintf("Obstacle HitBox: %s", o.HitBox(g.worldH)),
			fmt.Sprintf("Obstacle Index: %d", o.Variant),
		)
	}
	lines = append(lines,
		fmt.Sprintf("Obstacle List Length: %d", g.obstacles.Len()),
		fmt.Sprintf("Phase: %s", g.phase),
	)

	col := core.ColorInk
	if g.phase == PhaseStart {
		col = core.ColorSnow
	}
	lh := c.LineHeight(debugSize)
	for i, line := range lines {
		c.FillText(line, 10, lh*float64(i+1), debugSize, col)
	}

	if g.phase == PhaseStart {
		return
	}
	drawHitBox(c, ph)
	for i := 0; i < g.obstacles.Len(); i++ {
		if o := g.obstacles.At(i); o.Debug {
			drawHitBox(c, o.HitBox(g.worldH))
		}
	}
}

func drawHitBox(c canvas.Canvas, h HitBox) {
	c.FillRect(h.X, h.Y, h.W, h.H, core.ColorDebugFill)
	c.StrokeRect(h.X, h.Y, h.W, h.H, core.ColorDebugStroke)
}
