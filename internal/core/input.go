package core

// Event is a single input event reported by the front end for one tick.
// Events are consumed by the match in the order they were produced.
type Event interface {
	inputEvent()
}

// QuitRequested asks the program to exit.
type QuitRequested struct{}

func (QuitRequested) inputEvent() {}

// PointerClicked is a click at a world position.
type PointerClicked struct {
	Pos Vec2
}

func (PointerClicked) inputEvent() {}

// DifficultySelected picks a difficulty level in the menu.
type DifficultySelected struct {
	Level Difficulty
}

func (DifficultySelected) inputEvent() {}

// StartRequested starts a new round from the menu.
type StartRequested struct{}

func (StartRequested) inputEvent() {}

// ReturnToMenuRequested leaves the game-over screen.
type ReturnToMenuRequested struct{}

func (ReturnToMenuRequested) inputEvent() {}

// InputQueue collects events between two ticks.
type InputQueue struct {
	events []Event
}

// Push appends an event.
func (q *InputQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the queued events in order and empties the queue.
func (q *InputQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *InputQueue) Len() int {
	return len(q.events)
}
