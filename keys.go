package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cartpole/ecs/system"
)

var keyBindings = map[system.Key]ebiten.Key{
	system.KeyLeft:  ebiten.KeyArrowLeft,
	system.KeyRight: ebiten.KeyArrowRight,
	system.KeyDown:  ebiten.KeyArrowDown,
	system.KeyReset: ebiten.KeyR,
}

// ebitenKeys reads the keyboard through ebiten.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k system.Key) bool {
	key, ok := keyBindings[k]
	return ok && ebiten.IsKeyPressed(key)
}

func (ebitenKeys) JustPressed(k system.Key) bool {
	key, ok := keyBindings[k]
	return ok && inpututil.IsKeyJustPressed(key)
}
