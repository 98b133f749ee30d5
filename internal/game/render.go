package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"dancerunaway/internal/events"
	"dancerunaway/internal/media"
)

const hintText = `Press "q" to quit and "r" to restart`

// Draw renders the current frame: the running scene, the game-over screen
// or the quitting screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch {
	case g.state.ReceivedQuit:
		g.drawQuitting(screen)
	case g.state.GameOver != nil:
		g.drawGameOver(screen)
	default:
		g.drawScene(screen)
	}
}

func (g *Game) drawScene(screen *ebiten.Image) {
	level := g.media.Levels[g.state.LevelIndex]

	screen.DrawImage(level.Sky, nil)
	screen.DrawImage(level.BgDecor, nil)
	screen.DrawImage(level.MiddleDecor, nil)
	screen.DrawImage(level.Foreground, nil)

	drawActor(screen, &g.state.Runaway.Actor)
	drawActor(screen, &g.state.Chaser.Actor)

	// The ground layer covers the actors' feet.
	screen.DrawImage(level.Ground, nil)

	g.drawText(screen,
		fmt.Sprintf("Chaser velocity: %1.0f, runaway velocity: %1.0f",
			g.state.Chaser.Velocity/10, g.state.Runaway.Velocity/10),
		10, 10, 30, color.RGBA{R: 0xff, A: 0xff})

	g.drawText(screen, hintText, 10, media.SceneHeight-16, 12, color.Black)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	screen.Fill(color.Black)

	switch g.state.GameOver.Kind {
	case events.HappyEnd:
		g.drawText(screen, "You made it!", 20, 20, 16, color.White)
	case events.Busted:
		g.drawText(screen, "You have been caught :(", 20, 20, 16, color.White)
		drawActor(screen, &g.state.Runaway.Actor)
		drawActor(screen, &g.state.Chaser.Actor)
	}

	g.drawText(screen, hintText, 20, media.SceneHeight-36, 16, color.White)
}

func (g *Game) drawQuitting(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.drawText(screen, "Quitting...", 20, 20, 32, color.White)
}

func drawActor(dst *ebiten.Image, a *Actor) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(a.X, a.Y)
	dst.DrawImage(a.Frame().Image, op)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	face := &text.GoTextFace{Source: g.media.Font, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
