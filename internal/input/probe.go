package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// probe is a one-frame game used to read gamepad state outside of a real
// game session. Ebitengine exposes gamepads only while a game loop runs, so
// listing joysticks spins the loop for a single Update and terminates.
type probe struct {
	devices []Device
	done    bool
}

func (p *probe) Update() error {
	if !p.done {
		p.devices = Attached()
		p.done = true
	}
	return ebiten.Termination
}

func (p *probe) Draw(screen *ebiten.Image) {}

func (p *probe) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 1, 1
}

// Probe enumerates attached joysticks without starting the actual game.
// It may only be called when no other Ebitengine game is running, and at
// most once per process.
func Probe() ([]Device, error) {
	ebiten.SetWindowSize(320, 240)
	ebiten.SetWindowTitle("dance-runaway: probing joysticks")
	ebiten.SetWindowDecorated(false)
	ebiten.SetInitFocused(false)

	p := &probe{}
	if err := ebiten.RunGame(p); err != nil {
		return nil, err
	}
	return p.devices, nil
}
