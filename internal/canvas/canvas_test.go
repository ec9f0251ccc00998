package canvas

import (
	"testing"

	"github.com/vovakirdan/tux-runner/internal/core"
)

func TestTransformStack(t *testing.T) {
	var ts TransformStack

	if ts.Current() != Identity {
		t.Fatalf("zero stack should be identity, got %+v", ts.Current())
	}

	ts.Save()
	ts.Translate(128, 0)
	ts.Scale(-1, 1)

	x, y := ts.Current().Apply(0, 10)
	if x != 128 || y != 10 {
		t.Errorf("Apply(0, 10) = (%v, %v), expected (128, 10)", x, y)
	}
	x, _ = ts.Current().Apply(128, 0)
	if x != 0 {
		t.Errorf("Apply(128, 0).x = %v, expected 0", x)
	}

	// Translate after a mirror moves in mirrored space
	ts.Translate(10, 0)
	x, _ = ts.Current().Apply(0, 0)
	if x != 118 {
		t.Errorf("mirrored translate: x = %v, expected 118", x)
	}

	ts.Restore()
	if ts.Current() != Identity {
		t.Errorf("Restore should return to identity, got %+v", ts.Current())
	}

	// Unbalanced restore is ignored
	ts.Restore()
	if ts.Current() != Identity {
		t.Errorf("extra Restore changed the transform: %+v", ts.Current())
	}
}

func TestApplyRectFlips(t *testing.T) {
	tr := Transform{SX: -1, SY: 1, TX: 128}
	x, y, w, h, flipX, flipY := tr.ApplyRect(0, 20, 128, 64)

	if x != 0 || y != 20 || w != 128 || h != 64 {
		t.Errorf("ApplyRect = (%v, %v, %v, %v), expected (0, 20, 128, 64)", x, y, w, h)
	}
	if !flipX || flipY {
		t.Errorf("flips = (%v, %v), expected (true, false)", flipX, flipY)
	}
}

func TestObstacleSprite(t *testing.T) {
	tests := []struct {
		variant int
		want    Sprite
	}{
		{0, SpriteObstacle0},
		{3, SpriteObstacle3},
		{4, SpriteObstacle0},
		{-1, SpriteObstacle3},
	}
	for _, tc := range tests {
		if got := ObstacleSprite(tc.variant); got != tc.want {
			t.Errorf("ObstacleSprite(%d) = %d, expected %d", tc.variant, got, tc.want)
		}
	}
}

func TestAssetName(t *testing.T) {
	if SpritePlayer.AssetName() != "tux.png" {
		t.Errorf("player asset = %q", SpritePlayer.AssetName())
	}
	if SpriteObstacle2.AssetName() != "2.png" {
		t.Errorf("obstacle 2 asset = %q", SpriteObstacle2.AssetName())
	}
}

func newTestCanvas(w, h int) (*core.Screen, *ScreenCanvas) {
	s := core.NewScreen(w, h)
	return s, NewScreenCanvas(s, 16, 32)
}

func TestScreenCanvasSize(t *testing.T) {
	_, c := newTestCanvas(80, 24)
	w, h := c.Size()
	if w != 1280 || h != 768 {
		t.Errorf("Size() = (%v, %v), expected (1280, 768)", w, h)
	}
}

func TestScreenCanvasText(t *testing.T) {
	s, c := newTestCanvas(20, 4)

	c.FillText("Hi", 32, 32, 32, core.ColorInk)
	if s.Get(2, 0) != 'H' || s.Get(3, 0) != 'i' {
		t.Errorf("text with baseline 32 should land on row 0, got %q", s.Row(0))
	}
	if s.GetCell(2, 0).Color != core.ColorInk {
		t.Error("text should carry its color")
	}

	if got := c.MeasureText("Hello", 48); got != 80 {
		t.Errorf("MeasureText = %v, expected 80", got)
	}
	if got := c.LineHeight(18); got != 32 {
		t.Errorf("LineHeight = %v, expected one cell (32)", got)
	}
}

func TestScreenCanvasFillRect(t *testing.T) {
	s, c := newTestCanvas(8, 4)
	c.FillText("abc", 0, 32, 32, core.ColorInk)

	// Translucent fill keeps characters
	c.FillRect(0, 0, 128, 32, core.ColorDebugFill)
	if s.Get(0, 0) != 'a' || s.GetCell(0, 0).Background != core.ColorDebugFill {
		t.Errorf("translucent fill should tint only, got %+v", s.GetCell(0, 0))
	}

	// Opaque fill erases
	c.FillRect(0, 0, 128, 32, core.ColorSky)
	if got := s.GetCell(0, 0); got.Rune != ' ' || got.Background != core.ColorSky {
		t.Errorf("opaque fill should erase, got %+v", got)
	}
	if s.GetCell(0, 1).Background != core.ColorDefault {
		t.Error("fill should not spill onto the next row")
	}

	// Off-screen fill is clipped silently
	c.FillRect(-500, -500, 100, 100, core.ColorRed)
}

func TestScreenCanvasTinyRectCoversACell(t *testing.T) {
	s, c := newTestCanvas(8, 4)
	c.FillRect(20, 40, 2, 2, core.ColorRed)
	if s.GetCell(1, 1).Background != core.ColorRed {
		t.Error("a positive-size rect smaller than a cell should still cover one cell")
	}
}

func TestScreenCanvasStrokeRect(t *testing.T) {
	s, c := newTestCanvas(8, 4)
	c.StrokeRect(0, 0, 128, 128, core.ColorDebugStroke)

	if s.Get(0, 0) != '┌' || s.Get(7, 3) != '┘' || s.Get(3, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("unexpected outline:\n%s", s.String())
	}
}

func TestScreenCanvasSpriteMirroring(t *testing.T) {
	s, c := newTestCanvas(8, 4)

	c.DrawSprite(SpritePlayer, 0, 0, 128, 128)
	if got := s.Row(1); got != " (<o  ) " {
		t.Errorf("plain sprite row 1 = %q", got)
	}

	c.Clear()
	c.Save()
	c.Translate(128, 0)
	c.Scale(-1, 1)
	c.DrawSprite(SpritePlayer, 0, 0, 128, 128)
	c.Restore()

	if got := s.Row(1); got != " (  o>) " {
		t.Errorf("mirrored sprite row 1 = %q, expected %q", got, " (  o>) ")
	}
	if got := s.Row(2); got != " /(  )\\ " {
		t.Errorf("mirrored sprite row 2 = %q", got)
	}
}

func TestScreenCanvasSpriteClipped(t *testing.T) {
	s, c := newTestCanvas(8, 4)

	// Half the sprite hangs off the left edge
	c.DrawSprite(SpriteObstacle0, -64, 0, 128, 128)
	if s.Get(0, 0) != '-' || s.Get(3, 0) != '+' {
		t.Errorf("clipped sprite row 0 = %q, expected right half of the crate", s.Row(0))
	}
	if s.Get(4, 0) != ' ' {
		t.Error("nothing should be drawn past the sprite")
	}
}

func TestScreenCanvasSpriteTransparency(t *testing.T) {
	s, c := newTestCanvas(8, 4)
	c.FillRect(0, 0, 128, 128, core.ColorWhite)
	c.DrawSprite(SpriteObstacle1, 0, 0, 128, 128)

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Background != core.ColorWhite {
		t.Errorf("transparent glyph cells should keep the fill, got %+v", cell)
	}
	cell = s.GetCell(3, 0)
	if cell.Rune != '|' || cell.Color != core.ColorGreen || cell.Background != core.ColorWhite {
		t.Errorf("glyph cells should keep the background, got %+v", cell)
	}
}
