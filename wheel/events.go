package wheel

// EventType defines the kind of event emitted by a tracker.
type EventType int

const (
	EventColorChanged EventType = iota
	EventGestureIgnored
)

func (t EventType) String() string {
	switch t {
	case EventColorChanged:
		return "color-changed"
	case EventGestureIgnored:
		return "gesture-ignored"
	}
	return "unknown"
}

// Event describes a selection change or a rejected gesture.
type Event struct {
	Type   EventType
	Sector int
	Color  HueColor
	// Angle is the thumb rotation in radians when the event was emitted.
	Angle float64
	// Point is the pointer sample that produced the event, if any.
	Point Point
}

// EventHandler provides both channel and callback based event delivery.
// A tracker has at most one handler.
type EventHandler struct {
	Events chan Event
	Handle func(Event)
}

// Emit delivers the event through the channel and callback if present.
// A full channel drops the event rather than blocking the caller.
func (h *EventHandler) Emit(ev Event) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

// NewHandler returns a handler with a small buffered channel.
func NewHandler() *EventHandler {
	return &EventHandler{Events: make(chan Event, 8)}
}

// HandlerFunc wraps a callback that only cares about color changes.
func HandlerFunc(fn func(HueColor)) *EventHandler {
	return &EventHandler{Handle: func(ev Event) {
		if ev.Type == EventColorChanged {
			fn(ev.Color)
		}
	}}
}
