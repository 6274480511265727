package core

// Event represents a session event
type Event struct {
	Type    EventType
	Seq     uint64 // render count when the event was emitted
	Payload interface{}
}

type EventType uint16

const (
	EvtSessionStarted EventType = iota
	EvtCameraMoved
	EvtCellRaised
	EvtCellLowered
	EvtFrameRendered
	EvtDiscovered
	EvtFrameExported
)

func (t EventType) String() string {
	switch t {
	case EvtSessionStarted:
		return "session-started"
	case EvtCameraMoved:
		return "camera-moved"
	case EvtCellRaised:
		return "cell-raised"
	case EvtCellLowered:
		return "cell-lowered"
	case EvtFrameRendered:
		return "frame-rendered"
	case EvtDiscovered:
		return "discovered"
	case EvtFrameExported:
		return "frame-exported"
	default:
		return "unknown"
	}
}

// CellPayload accompanies EvtCellRaised / EvtCellLowered
type CellPayload struct {
	Col, Row int
	Height   int
	Changed  bool // false when the edit hit a clamp
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes all queued events. Handlers may emit; those events are
// delivered in the same call.
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
