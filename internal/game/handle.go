package game

import (
	"math"

	"dancerunaway/internal/events"
	"dancerunaway/internal/input"
	"dancerunaway/internal/media"
)

// Handle consumes the first event in the queue. Quit, restart and game
// over are handled regardless of the run state; everything else feeds the
// in-game logic, or is drained once the run is over.
func (s *State) Handle(q *events.Queue) {
	head, ok := q.Peek()
	if !ok {
		return
	}

	switch e := head.(type) {
	case events.ReceivedQuit:
		q.Pop()
		s.ReceivedQuit = true

	case events.ReceivedRestart:
		q.Pop()
		s.Reset(s.Now)

	case events.GameOver:
		q.Pop()
		if s.GameOver == nil {
			over := e
			s.GameOver = &over
		}

	default:
		if s.GameOver == nil {
			s.handleInGame(q)
		} else {
			// The scene is frozen at the game over; drain the event.
			q.Pop()
		}
	}
}

func (s *State) handleInGame(q *events.Queue) {
	e, ok := q.Pop()
	if !ok {
		return
	}

	switch e := e.(type) {
	case events.Tick:
		s.tick(e.Delta)

	case events.ButtonDown:
		if s.stepMatches(e.Pad) {
			q.Push(events.MakeStep{})
		}

	case events.MakeStep:
		s.Runaway.Velocity = math.Min(
			s.Runaway.Velocity+stepVelocityGain, maxRunawayVelocity)
		s.Steps++

	default:
		// Not relevant in-game; ignore.
	}
}

// tick advances the simulation by dt seconds of game time.
func (s *State) tick(dt float64) {
	s.Now += dt

	// The chaser closes in at constant speed.
	s.Chaser.X += s.Chaser.Velocity * dt
	s.Chaser.advanceFrame(s.Now, chaserFrameTime)

	if s.Chaser.CollidesWith(&s.Runaway.Actor) {
		s.GameOver = &events.GameOver{Kind: events.Busted}
		return
	}

	// Escaping over the right edge clears the level.
	runawaySolidX := s.Runaway.X + float64(s.Runaway.Frame().FirstSolidX)
	if runawaySolidX >= media.SceneWidth {
		if s.LevelIndex == s.levelCount-1 {
			s.GameOver = &events.GameOver{Kind: events.HappyEnd}
			return
		}
		s.advanceLevel()
	}

	// Friction drains the runaway; steps are the only thrust.
	s.Runaway.Velocity = math.Max(0, s.Runaway.Velocity-runawayFriction*dt)
	if s.Runaway.Velocity > 0 {
		s.Runaway.X += s.Runaway.Velocity * dt
		if !s.Runaway.animating {
			s.Runaway.animating = true
			s.Runaway.nextFrameAt = s.Now + runawayFrameTime
		} else {
			s.Runaway.advanceFrame(s.Now, runawayFrameTime)
		}
	} else {
		s.Runaway.animating = false
	}
}

// advanceLevel moves to the next level: the chaser speeds up and both
// actors re-enter from the left. The head start of the very first level is
// not repeated; the chaser spawns closer.
func (s *State) advanceLevel() {
	s.LevelIndex++

	s.Chaser.Velocity = math.Min(maxChaserVelocity, chaserSpeedupFactor*s.Chaser.Velocity)

	s.Runaway.X = 0
	s.Chaser.X = -float64(s.Chaser.Frame().Width) - 0.5*s.Chaser.Velocity
}

// stepMatches implements the alternating step rule: the first press of
// LEFT or RIGHT opens the run, after that only the opposite pad counts.
// Matching presses flip the expectation.
func (s *State) stepMatches(pad input.Pad) bool {
	if pad != input.PadLeft && pad != input.PadRight {
		return false
	}

	if s.nextPad != nil && *s.nextPad != pad {
		return false
	}

	opposite := input.PadLeft
	if pad == input.PadLeft {
		opposite = input.PadRight
	}
	s.nextPad = &opposite
	return true
}
