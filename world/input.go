package world

type EventType int64

const (
	EventTimerTick EventType = iota
	EventKeyDown
	EventKeyUp
)

type Key int64

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyRotate
	KeySoftDrop
	KeyMoveUp
)

// Event is a discrete input delivered to the World by the shell. Events have
// a fixed size so that they can be serialized directly.
type Event struct {
	Type EventType
	Key  Key
}

func TimerTick() Event {
	return Event{Type: EventTimerTick}
}

func KeyDown(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

func KeyUp(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// PlayerInput is everything that happened during one frame, in the order in
// which it happened.
type PlayerInput struct {
	Events []Event
}
