package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/adventure"
)

// keyBindings maps held ebiten keys to logical keys.
var keyBindings = []struct {
	key ebiten.Key
	to  adventure.Key
}{
	{ebiten.KeyArrowUp, adventure.KeyUp},
	{ebiten.KeyArrowDown, adventure.KeyDown},
	{ebiten.KeyArrowLeft, adventure.KeyLeft},
	{ebiten.KeyArrowRight, adventure.KeyRight},
	{ebiten.KeyZ, adventure.KeyZoomIn},
	{ebiten.KeyC, adventure.KeyZoomOut},
	{ebiten.KeyR, adventure.KeyRotateCC},
	{ebiten.KeyF, adventure.KeyRotateCW},
	{ebiten.KeyA, adventure.KeySlower},
	{ebiten.KeyD, adventure.KeyFaster},
}

// heldKeys translates a pressed-key predicate into the logical held set.
func heldKeys(pressed func(ebiten.Key) bool) []adventure.Key {
	var held []adventure.Key
	for _, b := range keyBindings {
		if pressed(b.key) {
			held = append(held, b.to)
		}
	}
	return held
}

// pollKeys copies the keyboard state into in. Escape requests close.
func pollKeys(in *adventure.Input) {
	in.SetHeld(heldKeys(ebiten.IsKeyPressed))
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Press(adventure.KeyEscape)
	}
}
