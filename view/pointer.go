package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"huewheel/wheel"
)

// pointerState is one frame of primary pointer input.
type pointerState struct {
	Pos wheel.Point
	// JustPressed and Pressed follow inpututil semantics for the first
	// touch or the left mouse button.
	JustPressed bool
	Pressed     bool
	// MultiTouch is set while more than one finger is down; a second finger
	// cancels any drag in progress.
	MultiTouch bool
}

// readPointer samples the current pointer. If a touch is active the first
// touch is used; otherwise the mouse cursor.
func readPointer() pointerState {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 1 {
		x, y := ebiten.TouchPosition(ids[0])
		return pointerState{Pos: wheel.Pt(float64(x), float64(y)), MultiTouch: true}
	}
	if len(ids) == 1 {
		x, y := ebiten.TouchPosition(ids[0])
		return pointerState{
			Pos:         wheel.Pt(float64(x), float64(y)),
			JustPressed: len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
			Pressed:     true,
		}
	}
	x, y := ebiten.CursorPosition()
	return pointerState{
		Pos:         wheel.Pt(float64(x), float64(y)),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButton0),
	}
}
