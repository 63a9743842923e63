package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	clipboard "golang.design/x/clipboard"
	"golang.org/x/time/rate"

	"huewheel/view"
	"huewheel/wheel"
)

// pickerScale is the share of the shorter window side used by the ring.
const pickerScale = 0.6

type Game struct {
	picker *view.ColorPicker

	selected wheel.HueColor
	sector   int
	hasColor bool

	// copyOnRelease writes the selected color to the clipboard when a drag
	// ends.
	copyOnRelease bool
	copied        string

	// moveLog throttles debug output while dragging.
	moveLog *rate.Limiter

	width, height int
}

func newGame(s settings) (*Game, error) {
	g := &Game{
		width:   s.WindowWidth,
		height:  s.WindowHeight,
		moveLog: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}
	p, err := view.New(s.Picker, pickerFrame(g.width, g.height))
	if err != nil {
		return nil, fmt.Errorf("create picker: %w", err)
	}
	p.SetHandler(&wheel.EventHandler{Handle: g.onEvent})
	g.picker = p
	return g, nil
}

// pickerFrame centers a square ring frame in a w×h screen.
func pickerFrame(w, h int) wheel.Rect {
	size := math.Floor(math.Min(float64(w), float64(h)) * pickerScale)
	x := math.Floor((float64(w) - size) / 2)
	y := math.Floor((float64(h) - size) / 2)
	return wheel.Rect{Min: wheel.Pt(x, y), Max: wheel.Pt(x+size, y+size)}
}

func (g *Game) onEvent(ev wheel.Event) {
	switch ev.Type {
	case wheel.EventGestureIgnored:
		logDebug("ignoring tap: %.0f %.0f", ev.Point.X, ev.Point.Y)
	case wheel.EventColorChanged:
		g.selected = ev.Color
		g.sector = ev.Sector
		g.hasColor = true
		if g.moveLog.Allow() {
			logDebug("color changed: sector=%d %s angle=%.3f", ev.Sector, ev.Color.Hex(), ev.Angle)
		}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.picker.SetHidden(!g.picker.Hidden())
	}
	wasDragging := g.picker.Dragging()
	if err := g.picker.Update(); err != nil {
		if !errors.Is(err, wheel.ErrInvalidState) {
			return err
		}
		logWarn("picker: %v", err)
	}
	if wasDragging && !g.picker.Dragging() {
		g.dragEnded()
	}
	return nil
}

func (g *Game) dragEnded() {
	if !g.hasColor {
		return
	}
	hex := g.selected.Hex()
	logDebug("selected sector=%d %s", g.sector, hex)
	if g.copyOnRelease {
		clipboard.Write(clipboard.FmtText, []byte(hex))
		g.copied = hex
	}
}

var bgColor = color.RGBA{32, 32, 32, 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	g.picker.Draw(screen)

	if g.hasColor && !g.picker.Hidden() {
		f := g.picker.Frame()
		c := f.Center()
		r := float32(f.Dx() / 8)
		vector.FillCircle(screen, float32(c.X), float32(c.Y), r, g.selected, true)
	}

	msg := "press H to hide"
	if g.hasColor {
		msg = fmt.Sprintf("sector %d  %s", g.sector, g.selected.Hex())
		if g.copied != "" {
			msg += fmt.Sprintf("  (copied %s)", g.copied)
		}
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.picker.SetFrame(pickerFrame(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}
