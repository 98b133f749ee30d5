package game

import (
	"math"

	"dancerunaway/internal/media"
)

// Actor is an animated figure in the scene. Coordinates are the top-left
// corner of the current frame, in scene pixels.
type Actor struct {
	X, Y float64

	Frames     []media.Sprite
	FrameIndex int

	// Game time at which the animation advances to the next frame.
	nextFrameAt float64
}

// Frame returns the sprite at the current animation state.
func (a *Actor) Frame() media.Sprite {
	return a.Frames[a.FrameIndex]
}

// advanceFrame cycles to the next animation frame once now passes the
// frame deadline.
func (a *Actor) advanceFrame(now, frameTime float64) {
	if a.nextFrameAt > now {
		return
	}
	a.nextFrameAt = now + frameTime
	a.FrameIndex = (a.FrameIndex + 1) % len(a.Frames)
}

// CollidesWith checks for a per-pixel overlap between the current frames
// of the two actors.
func (a *Actor) CollidesWith(b *Actor) bool {
	fa, fb := a.Frame(), b.Frame()

	if !intersect(
		a.X, a.Y, a.X+float64(fa.Width), a.Y+float64(fa.Height),
		b.X, b.Y, b.X+float64(fb.Width), b.Y+float64(fb.Height),
	) {
		return false
	}

	dx := int(math.Round(b.X - a.X))
	dy := int(math.Round(b.Y - a.Y))
	return fa.Mask.Overlaps(fb.Mask, dx, dy)
}

// intersect reports whether two bounding boxes overlap.
func intersect(xminA, yminA, xmaxA, ymaxA, xminB, yminB, xmaxB, ymaxB float64) bool {
	return xminA <= xmaxB && xmaxA >= xminB && yminA <= ymaxB && ymaxA >= yminB
}

// Chaser is the non-player actor closing in on the runaway.
type Chaser struct {
	Actor
	Velocity float64 // px/s
}

// Runaway is the player actor.
type Runaway struct {
	Actor
	Velocity float64 // px/s

	// animating tracks whether the run animation is live; it stops when
	// the runaway stands still.
	animating bool
}
