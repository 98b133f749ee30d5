// Package events defines the game events and the queue they travel through.
// The game loop translates device input into events, appends a Tick per
// frame, and the state machine consumes the queue one event at a time.
package events

import (
	"fmt"

	"dancerunaway/internal/input"
)

// Event is a marker for everything that can travel through the queue.
type Event interface {
	fmt.Stringer
	event()
}

// Tick marks a step of the (fixed) game clock.
type Tick struct {
	// Delta is the elapsed game time for this tick, in seconds.
	Delta float64
}

func (Tick) event() {}

func (t Tick) String() string { return "Tick" }

// GameOverKind models the two possible endings.
type GameOverKind int

const (
	HappyEnd GameOverKind = iota
	Busted
)

func (k GameOverKind) String() string {
	switch k {
	case HappyEnd:
		return "happy end"
	case Busted:
		return "busted"
	default:
		return fmt.Sprintf("GameOverKind(%d)", int(k))
	}
}

// GameOver signals that the run ended.
type GameOver struct {
	Kind GameOverKind
}

func (GameOver) event() {}

func (g GameOver) String() string {
	return fmt.Sprintf("GameOver(%s)", g.Kind)
}

// ButtonDown captures a logical pad press.
type ButtonDown struct {
	Pad input.Pad
}

func (ButtonDown) event() {}

func (b ButtonDown) String() string {
	return fmt.Sprintf("ButtonDown(%s)", b.Pad)
}

// MakeStep signals that the player made a valid step.
type MakeStep struct{}

func (MakeStep) event() {}

func (MakeStep) String() string { return "MakeStep" }

// ReceivedQuit signals the request to leave the game.
type ReceivedQuit struct{}

func (ReceivedQuit) event() {}

func (ReceivedQuit) String() string { return "ReceivedQuit" }

// ReceivedRestart signals the request to restart the run.
type ReceivedRestart struct{}

func (ReceivedRestart) event() {}

func (ReceivedRestart) String() string { return "ReceivedRestart" }

// Queue is a FIFO of pending events. Not safe for concurrent use; the game
// loop owns it.
type Queue struct {
	items []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.items = append(q.items, e)
}

// Pop removes and returns the head of the queue.
func (q *Queue) Pop() (Event, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	e := q.items[0]
	q.items = q.items[1:]
	return e, true
}

// Peek returns the head without removing it.
func (q *Queue) Peek() (Event, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Len reports the number of pending events.
func (q *Queue) Len() int { return len(q.items) }

// Empty reports whether the queue has no pending events.
func (q *Queue) Empty() bool { return len(q.items) == 0 }
