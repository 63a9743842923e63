package wheel

import "fmt"

// Result is the outcome of feeding one gesture sample to a Tracker.
// Accepted is false only for a gesture that started inside the dead zone;
// Sector and Color are meaningless in that case.
type Result struct {
	Accepted bool
	Sector   int
	Color    HueColor
}

// session is the state of one gesture, from Begin to End or Cancel.
type session struct {
	// deltaAngle is the pointer angle at Begin.
	deltaAngle float64
	// lastAngle is the pointer angle of the most recent sample.
	lastAngle float64
	// accumulated is the thumb rotation in radians, kept in (-π, π].
	accumulated float64
}

// Tracker turns pointer samples into thumb rotation and a selected sector.
// It is driven from a single goroutine, normally the host's update loop.
type Tracker struct {
	cfg     ArcConfig
	center  Point
	handler *EventHandler

	session *session
	// rotation is the angle the thumb was left at by the last gesture.
	rotation float64

	last    Result
	hasLast bool
	// ended is set once a gesture finishes and cleared by the next Begin.
	ended bool
}

// NewTracker validates cfg and returns an idle tracker for a control
// centered at center.
func NewTracker(cfg ArcConfig, center Point) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tracker{cfg: cfg, center: center}, nil
}

// Config returns the tracker configuration.
func (t *Tracker) Config() ArcConfig { return t.cfg }

// Reconfigure replaces the configuration. Any gesture in progress is
// dropped without notification.
func (t *Tracker) Reconfigure(cfg ArcConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	t.cfg = cfg
	t.session = nil
	t.hasLast = false
	t.ended = false
	return nil
}

// Center returns the control center used for angles and the dead zone.
func (t *Tracker) Center() Point { return t.center }

// SetCenter moves the control center, e.g. after a host relayout.
func (t *Tracker) SetCenter(p Point) { t.center = p }

// SetHandler registers the single listener, replacing any previous one.
// A nil handler disables notifications.
func (t *Tracker) SetHandler(h *EventHandler) { t.handler = h }

// Tracking reports whether a gesture is in progress.
func (t *Tracker) Tracking() bool { return t.session != nil }

// Angle returns the current thumb rotation in radians.
func (t *Tracker) Angle() float64 {
	if t.session != nil {
		return t.session.accumulated
	}
	return t.rotation
}

// Last returns the most recent accepted result.
func (t *Tracker) Last() (Result, bool) { return t.last, t.hasLast }

// Refresh recomputes the selection for the current rotation and notifies
// the listener. Hosts call it once the control is first shown.
func (t *Tracker) Refresh() Result {
	return t.publish(t.Angle(), Point{})
}

// Begin starts a gesture at p. A gesture starting inside the dead zone is
// ignored: the result is not accepted and no session is created.
func (t *Tracker) Begin(p Point) (Result, error) {
	if t.session != nil {
		return Result{}, fmt.Errorf("begin while tracking: %w", ErrInvalidState)
	}
	if DistanceFromCenter(t.center, p) < t.cfg.DeadZoneRadiusPx {
		t.handler.Emit(Event{Type: EventGestureIgnored, Angle: t.Angle(), Point: p})
		return Result{}, nil
	}
	start := 0.0
	if t.cfg.RetainRotation {
		start = t.rotation
	}
	ang := angleFrom(t.center, p)
	t.session = &session{deltaAngle: ang, lastAngle: ang, accumulated: start}
	t.ended = false
	return t.publish(start, p), nil
}

// Move feeds the next pointer sample of the current gesture.
func (t *Tracker) Move(p Point) (Result, error) {
	s := t.session
	if s == nil {
		return Result{}, fmt.Errorf("move without begin: %w", ErrInvalidState)
	}
	ang := angleFrom(t.center, p)
	switch t.cfg.Accumulation {
	case AccumulateFromOrigin:
		s.accumulated = wrapAngle(s.accumulated - (s.deltaAngle - ang))
	default:
		s.accumulated = wrapAngle(s.accumulated + wrapAngle(ang-s.lastAngle))
	}
	s.lastAngle = ang
	return t.publish(s.accumulated, p), nil
}

// End finishes the gesture and reports the final selection, which is the
// selection of the last sample. Calling End again without a new gesture
// returns the same result and does not notify.
func (t *Tracker) End() (Result, error) {
	s := t.session
	if s == nil {
		if t.ended {
			return t.last, nil
		}
		return Result{}, fmt.Errorf("end without begin: %w", ErrInvalidState)
	}
	t.session = nil
	t.ended = true
	t.rotation = s.accumulated
	t.handler.Emit(Event{Type: EventColorChanged, Sector: t.last.Sector, Color: t.last.Color, Angle: t.rotation})
	return t.last, nil
}

// Cancel abandons the gesture. The thumb stays where the last sample put it
// and the listener is not notified.
func (t *Tracker) Cancel() (Result, error) {
	s := t.session
	if s == nil {
		if t.ended {
			return t.last, nil
		}
		return Result{}, fmt.Errorf("cancel without begin: %w", ErrInvalidState)
	}
	t.session = nil
	t.ended = true
	t.rotation = s.accumulated
	return t.last, nil
}

func (t *Tracker) publish(angle float64, p Point) Result {
	sector := SectorFromAngle(angle, t.cfg)
	// SectorFromAngle already normalized sector and cfg is validated, so this
	// cannot fail.
	col, _ := ColorForSector(sector, t.cfg.TotalSectors)
	t.last = Result{Accepted: true, Sector: sector, Color: col}
	t.hasLast = true
	t.handler.Emit(Event{Type: EventColorChanged, Sector: sector, Color: col, Angle: angle, Point: p})
	return t.last
}
