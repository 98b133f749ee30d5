package events

import (
	"testing"

	"dancerunaway/internal/input"
)

func TestQueue_FIFO(t *testing.T) {
	var q Queue
	q.Push(ButtonDown{Pad: input.PadLeft})
	q.Push(Tick{Delta: 0.1})
	q.Push(MakeStep{})

	if q.Len() != 3 {
		t.Fatalf("expected 3 events, got %d", q.Len())
	}

	e, ok := q.Pop()
	if !ok {
		t.Fatal("expected an event")
	}
	if _, isButton := e.(ButtonDown); !isButton {
		t.Errorf("expected ButtonDown first, got %T", e)
	}

	if head, ok := q.Peek(); !ok {
		t.Fatal("expected a head event")
	} else if _, isTick := head.(Tick); !isTick {
		t.Errorf("expected Tick at the head, got %T", head)
	}

	q.Pop()
	q.Pop()
	if !q.Empty() {
		t.Error("queue should be empty")
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue should report false")
	}
}

func TestEventStrings(t *testing.T) {
	cases := []struct {
		event Event
		want  string
	}{
		{Tick{}, "Tick"},
		{MakeStep{}, "MakeStep"},
		{ReceivedQuit{}, "ReceivedQuit"},
		{ReceivedRestart{}, "ReceivedRestart"},
		{ButtonDown{Pad: input.PadLeft}, "ButtonDown(left)"},
		{GameOver{Kind: Busted}, "GameOver(busted)"},
		{GameOver{Kind: HappyEnd}, "GameOver(happy end)"},
	}
	for _, tc := range cases {
		if got := tc.event.String(); got != tc.want {
			t.Errorf("%T.String() = %q, want %q", tc.event, got, tc.want)
		}
	}
}
