package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/unicorn-run/internal/core"
)

// keyBinding maps one key to a game action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

var keyBindings = []keyBinding{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyZ, core.ActionDash},
	{ebiten.KeyX, core.ActionDash},
	{ebiten.KeyArrowRight, core.ActionDash},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyB, core.ActionBack},
	{ebiten.KeyM, core.ActionMute},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyQ, core.ActionQuit},
}

// keyState reports key presses; the window passes ebiten's, tests pass fakes.
type keyState interface {
	JustPressed(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }

// readInput collects the actions triggered this frame.
func readInput(keys keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range keyBindings {
		if keys.JustPressed(b.key) {
			frame.Set(b.action)
		}
	}
	if keys.Pressed(ebiten.KeyControl) && keys.JustPressed(ebiten.KeyC) {
		frame.Set(core.ActionQuit)
	}
	return frame
}
