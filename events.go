package adventure

// EventSink receives entity lifecycle events from the Engine. An ECS bridge
// is the usual implementation.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}

// EventType identifies a lifecycle transition.
type EventType uint8

const (
	EventEntityAdded EventType = iota
	EventEntityRemoved
)

func (t EventType) String() string {
	switch t {
	case EventEntityAdded:
		return "added"
	case EventEntityRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// LifecycleEvent is emitted when an entity joins or leaves the live
// collection. X and Y are the entity's world position at that moment.
type LifecycleEvent struct {
	Type     EventType
	EntityID uint32
	Name     string
	X        float64
	Y        float64
	Tick     int
}
