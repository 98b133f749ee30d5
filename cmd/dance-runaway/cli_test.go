package main

import "testing"

// The joystick flags are the documented interface of the game; keep their
// exact names stable.
func TestJoystickFlagSurface(t *testing.T) {
	for _, name := range []string{"list_joysticks", "joystick", "window", "assets"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s is missing", name)
		}
	}
}

func TestVersionIsSet(t *testing.T) {
	if rootCmd.Version != version {
		t.Errorf("rootCmd.Version = %q, want %q", rootCmd.Version, version)
	}
}

func TestScoresCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "scores" {
			return
		}
	}
	t.Error("scores subcommand not registered")
}
