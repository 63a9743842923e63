package view

import (
	"github.com/hajimehoshi/ebiten/v2"

	"huewheel/wheel"
)

// ColorPicker is a hue ring with a draggable thumb arc. The selected color
// is reported to the handler registered with SetHandler.
type ColorPicker struct {
	opts    Options
	frame   wheel.Rect
	tracker *wheel.Tracker

	dragging bool
	lastPos  wheel.Point
	shown    bool

	ringImg  *ebiten.Image
	thumbImg *ebiten.Image
}

// New builds a picker whose ring fills frame.
func New(opts Options, frame wheel.Rect) (*ColorPicker, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tr, err := wheel.NewTracker(opts.Arc, frame.Center())
	if err != nil {
		return nil, err
	}
	return &ColorPicker{opts: opts, frame: frame, tracker: tr}, nil
}

// Options returns the picker options.
func (p *ColorPicker) Options() Options { return p.opts }

// Frame returns the ring frame in screen coordinates.
func (p *ColorPicker) Frame() wheel.Rect { return p.frame }

// SetFrame moves or resizes the picker. Cached artwork is rebuilt when the
// size changes.
func (p *ColorPicker) SetFrame(r wheel.Rect) {
	if r.Dx() != p.frame.Dx() || r.Dy() != p.frame.Dy() {
		p.disposeImages()
	}
	p.frame = r
	p.tracker.SetCenter(r.Center())
}

// thumbFrame is the frame of the thumb arc: the ring frame grown by the arc
// spacing, sharing its center.
func (p *ColorPicker) thumbFrame() wheel.Rect {
	pad := p.opts.ArcControlSpacing / 2
	return wheel.Rect{
		Min: wheel.Pt(p.frame.Min.X-pad, p.frame.Min.Y-pad),
		Max: wheel.Pt(p.frame.Max.X+pad, p.frame.Max.Y+pad),
	}
}

// SetHandler registers the single color listener.
func (p *ColorPicker) SetHandler(h *wheel.EventHandler) { p.tracker.SetHandler(h) }

// Selected returns the current selection, if any has been made yet.
func (p *ColorPicker) Selected() (wheel.Result, bool) { return p.tracker.Last() }

// Angle returns the thumb rotation in radians.
func (p *ColorPicker) Angle() float64 { return p.tracker.Angle() }

// Dragging reports whether a drag gesture is in progress.
func (p *ColorPicker) Dragging() bool { return p.dragging }

// Hidden reports whether the picker is hidden.
func (p *ColorPicker) Hidden() bool { return p.opts.Hidden }

// SetHidden hides or shows both the ring and the thumb. Hiding cancels a
// drag in progress.
func (p *ColorPicker) SetHidden(hidden bool) {
	p.opts.Hidden = hidden
	if hidden && p.dragging {
		p.dragging = false
		p.tracker.Cancel()
	}
}

// Update polls pointer input. Call it from the game's Update.
func (p *ColorPicker) Update() error {
	return p.handlePointer(readPointer())
}

func (p *ColorPicker) handlePointer(st pointerState) error {
	if p.opts.Hidden {
		return nil
	}
	if !p.shown {
		// Report the initial color once the picker is first live.
		p.shown = true
		p.tracker.Refresh()
	}

	switch {
	case st.MultiTouch:
		if p.dragging {
			p.dragging = false
			_, err := p.tracker.Cancel()
			return err
		}
	case p.dragging && !st.Pressed:
		p.dragging = false
		_, err := p.tracker.End()
		return err
	case p.dragging:
		if st.Pos != p.lastPos {
			p.lastPos = st.Pos
			_, err := p.tracker.Move(st.Pos)
			return err
		}
	case st.JustPressed && p.thumbFrame().Contains(st.Pos):
		res, err := p.tracker.Begin(st.Pos)
		if err != nil {
			return err
		}
		if res.Accepted {
			p.dragging = true
			p.lastPos = st.Pos
		}
	}
	return nil
}

// Draw renders the ring and the rotated thumb onto screen.
func (p *ColorPicker) Draw(screen *ebiten.Image) {
	if p.opts.Hidden {
		return
	}
	p.ensureImages()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.frame.Min.X, p.frame.Min.Y)
	screen.DrawImage(p.ringImg, op)

	tf := p.thumbFrame()
	op = &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(-tf.Dx()/2, -tf.Dy()/2)
	op.GeoM.Rotate(p.tracker.Angle())
	c := tf.Center()
	op.GeoM.Translate(c.X, c.Y)
	screen.DrawImage(p.thumbImg, op)
}

func (p *ColorPicker) ensureImages() {
	if p.ringImg == nil {
		p.ringImg = ringImage(p.frame.Dx(), p.frame.Dy(), p.opts)
	}
	if p.thumbImg == nil {
		tf := p.thumbFrame()
		p.thumbImg = thumbImage(tf.Dx(), tf.Dy(), p.frame.Dx(), p.opts)
	}
}

func (p *ColorPicker) disposeImages() {
	if p.ringImg != nil {
		p.ringImg.Deallocate()
		p.ringImg = nil
	}
	if p.thumbImg != nil {
		p.thumbImg.Deallocate()
		p.thumbImg = nil
	}
}
