package ebitenshell

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/aerobatica"
)

// keyBindings maps each logical key to the physical keys that trigger it.
var keyBindings = map[aerobatica.Key][]ebiten.Key{
	aerobatica.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	aerobatica.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	aerobatica.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	aerobatica.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	aerobatica.KeyFire:  {ebiten.KeySpace},
	aerobatica.KeyQuit:  {ebiten.KeyEscape, ebiten.KeyQ},
}

// keyboard reads the live ebiten key state.
type keyboard struct {
	pressed func(ebiten.Key) bool
}

func newKeyboard() keyboard {
	return keyboard{pressed: ebiten.IsKeyPressed}
}

// IsKeyDown implements aerobatica.Keys.
func (kb keyboard) IsKeyDown(k aerobatica.Key) bool {
	for _, ek := range keyBindings[k] {
		if kb.pressed(ek) {
			return true
		}
	}
	return false
}
