package input

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrNoJoysticks is returned when no joystick is attached at all.
	ErrNoJoysticks = errors.New("no joysticks attached")

	// ErrJoystickNotFound is returned when a requested GUID matches nothing.
	ErrJoystickNotFound = errors.New("joystick not found")
)

// Device describes an attached joystick.
type Device struct {
	ID   ebiten.GamepadID
	Name string
	GUID string // SDL GUID string, stable across runs for the same hardware
}

func (d Device) String() string {
	return fmt.Sprintf("%s (GUID %s)", d.Name, d.GUID)
}

// Attached enumerates the currently attached joysticks. Gamepad state is
// only defined while the game loop runs, so this must be called from an
// Update of a running game (see Probe for the standalone listing path).
func Attached() []Device {
	ids := ebiten.AppendGamepadIDs(nil)
	devices := make([]Device, 0, len(ids))
	for _, id := range ids {
		devices = append(devices, Device{
			ID:   id,
			Name: ebiten.GamepadName(id),
			GUID: ebiten.GamepadSDLID(id),
		})
	}
	return devices
}

// Select picks the dance mat among the attached devices. An empty guid
// selects the first enumerated device. When several mats share a GUID the
// first match wins.
func Select(devices []Device, guid string) (Device, error) {
	if len(devices) == 0 {
		return Device{}, ErrNoJoysticks
	}
	if guid == "" {
		return devices[0], nil
	}
	for _, d := range devices {
		if d.GUID == guid {
			return d, nil
		}
	}
	return Device{}, fmt.Errorf("%w: GUID %s", ErrJoystickNotFound, guid)
}
