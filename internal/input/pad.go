// Package input handles the dance mat: logical pads, the mapping from raw
// joystick button numbers to pads, and joystick enumeration/selection.
package input

import (
	"fmt"
	"strings"
)

// Pad is a logical dance-mat pad, decoupled from any concrete joystick.
// Pads are enumerated around the circle, upper-left first.
type Pad int

const (
	PadCross Pad = iota
	PadUp
	PadCircle
	PadRight
	PadSquare
	PadDown
	PadTriangle
	PadLeft

	padCount
)

var padNames = [...]string{
	PadCross:    "cross",
	PadUp:       "up",
	PadCircle:   "circle",
	PadRight:    "right",
	PadSquare:   "square",
	PadDown:     "down",
	PadTriangle: "triangle",
	PadLeft:     "left",
}

func (p Pad) String() string {
	if p < 0 || p >= padCount {
		return fmt.Sprintf("Pad(%d)", int(p))
	}
	return padNames[p]
}

// ParsePad resolves a pad name as it appears in the button-mapping config.
func ParsePad(name string) (Pad, error) {
	for p, n := range padNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return Pad(p), nil
		}
	}
	return 0, fmt.Errorf("unknown pad name %q", name)
}

// Mapping translates raw joystick button numbers to logical pads.
type Mapping struct {
	byButton map[int]Pad
}

// DefaultMapping matches the reference dance mat.
func DefaultMapping() Mapping {
	return Mapping{byButton: map[int]Pad{
		6: PadCross,
		2: PadUp,
		7: PadCircle,
		3: PadRight,
		5: PadSquare,
		1: PadDown,
		4: PadTriangle,
		0: PadLeft,
	}}
}

// NewMapping builds a mapping from config entries (raw button -> pad name).
// Every pad name must parse; duplicate buttons are rejected by the map type
// upstream (YAML keys are unique).
func NewMapping(entries map[int]string) (Mapping, error) {
	if len(entries) == 0 {
		return DefaultMapping(), nil
	}
	m := Mapping{byButton: make(map[int]Pad, len(entries))}
	for button, name := range entries {
		if button < 0 {
			return Mapping{}, fmt.Errorf("invalid button number %d", button)
		}
		pad, err := ParsePad(name)
		if err != nil {
			return Mapping{}, fmt.Errorf("button %d: %w", button, err)
		}
		m.byButton[button] = pad
	}
	return m, nil
}

// Lookup returns the pad bound to a raw button number, if any.
func (m Mapping) Lookup(button int) (Pad, bool) {
	p, ok := m.byButton[button]
	return p, ok
}

// Len reports how many buttons are bound.
func (m Mapping) Len() int { return len(m.byButton) }
