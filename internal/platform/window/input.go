package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tux-runner/internal/core"
)

// inputSource reports the pointer and keyboard state for one frame.
type inputSource interface {
	JumpHeld() bool
	Activated() bool
	DebugToggled() bool
	QuitRequested() bool
}

// ebitenInput reads keyboard, mouse and touch state from ebiten.
// Space, up, W, the left button and any touch hold the jump; a fresh
// click, tap, Enter or R activates.
type ebitenInput struct{}

func (ebitenInput) JumpHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		len(ebiten.AppendTouchIDs(nil)) > 0
}

func (ebitenInput) Activated() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (ebitenInput) DebugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyD)
}

func (ebitenInput) QuitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}

// readFrame builds the input frame for one tick.
func readFrame(src inputSource, now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	in.At = now
	if src.JumpHeld() {
		in.Set(core.ActionJump)
	}
	if src.Activated() {
		in.Set(core.ActionActivate)
	}
	if src.DebugToggled() {
		in.Set(core.ActionDebug)
	}
	return in
}
