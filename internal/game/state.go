package game

import (
	"dancerunaway/internal/events"
	"dancerunaway/internal/input"
	"dancerunaway/internal/media"
)

// State captures the whole game state between frames.
type State struct {
	// Set once the quit request arrived; the loop winds down afterwards.
	ReceivedQuit bool

	// Game clock, in seconds. GameStart is the clock value at the start
	// of the current run.
	GameStart float64
	Now       float64

	// Set when the run ends; the scene freezes at that point.
	GameOver *events.GameOver

	Runaway Runaway
	Chaser  Chaser

	// The pad that has to be stepped on next; nil right after the start,
	// when either foot may open.
	nextPad *input.Pad

	LevelIndex int
	levelCount int

	// Steps taken during the current run, for the score record.
	Steps int
}

// NewState initializes a run. The frame slices must be non-empty; the
// caller (media loading) guarantees that.
func NewState(start float64, runawayFrames, chaserFrames []media.Sprite, levelCount int) *State {
	s := &State{}
	s.Runaway.Frames = runawayFrames
	s.Chaser.Frames = chaserFrames
	s.levelCount = levelCount
	s.Reset(start)
	return s
}

// Reset puts the state back to the beginning of a fresh run.
func (s *State) Reset(start float64) {
	s.ReceivedQuit = false
	s.GameStart = start
	s.Now = start
	s.GameOver = nil
	s.nextPad = nil
	s.LevelIndex = 0
	s.Steps = 0

	// The runaway starts with a head start of a few chaser-seconds so a
	// novice player can see what is going on; the chaser enters from
	// off-screen left.
	s.Runaway = Runaway{
		Actor: Actor{
			X:      3.0 * initialChaserVelocity,
			Y:      actorsY,
			Frames: s.Runaway.Frames,
		},
	}
	s.Chaser = Chaser{
		Actor: Actor{
			X:           -float64(s.Chaser.Frames[0].Width),
			Y:           actorsY,
			Frames:      s.Chaser.Frames,
			nextFrameAt: start + chaserFrameTime,
		},
		Velocity: initialChaserVelocity,
	}
}

// LevelCount returns the number of loaded levels.
func (s *State) LevelCount() int { return s.levelCount }

// NextPad returns the pad expected for the next step, or false right after
// the start when either of LEFT/RIGHT counts.
func (s *State) NextPad() (input.Pad, bool) {
	if s.nextPad == nil {
		return 0, false
	}
	return *s.nextPad, true
}
