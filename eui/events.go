package eui

import "log"

// UIEventType defines the kind of event emitted by widgets.
type UIEventType int

const (
	EventClick UIEventType = iota
	EventCheckboxChanged
	EventInputChanged
	EventInputSubmit
	EventListSelected
	EventMenuSelected
	EventDropdownSelected
)

func (t UIEventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventCheckboxChanged:
		return "checkbox"
	case EventInputChanged:
		return "input"
	case EventInputSubmit:
		return "submit"
	case EventListSelected:
		return "select"
	case EventMenuSelected:
		return "menu"
	case EventDropdownSelected:
		return "dropdown"
	}
	return "unknown"
}

// UIEvent describes a user interaction with a widget.
type UIEvent struct {
	Control Control
	Type    UIEventType
	Index   int
	Checked bool
	Text    string
}

// ID is the id of the emitting control, or "" for anonymous controls.
func (ev UIEvent) ID() string {
	if ev.Control == nil {
		return ""
	}
	return ev.Control.AsBase().ID()
}

// EventHandler provides both channel and callback based event delivery.
type EventHandler struct {
	Events chan UIEvent
	Handle func(UIEvent)
}

// Emit delivers the event through the channel and callback if present. If the
// channel is full the event is dropped and logged rather than blocking.
func (h *EventHandler) Emit(ev UIEvent) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
			log.Printf("event channel full, dropping event: %v", ev.Type)
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

func newHandler() *EventHandler {
	return &EventHandler{Events: make(chan UIEvent, 64)}
}
