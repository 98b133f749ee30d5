package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"dancerunaway/internal/events"
	"dancerunaway/internal/input"
	"dancerunaway/internal/media"
	"dancerunaway/internal/scores"
)

// Recorder persists finished runs. *scores.Store satisfies it; a nil
// Recorder disables recording.
type Recorder interface {
	Record(run scores.Run) error
}

// Options configure a game session.
type Options struct {
	// JoystickGUID selects the dance mat; empty means first attached.
	JoystickGUID string

	// Mapping from raw joystick buttons to pads. May be swapped at
	// runtime via SetMapping (config hot-reload).
	Mapping input.Mapping

	// Debug maps the keyboard arrows to steps.
	Debug bool

	Recorder Recorder
	Logger   *zap.Logger
}

// Game drives the Ebitengine loop: input gathering, the event queue, the
// state machine and rendering.
type Game struct {
	media  *media.Media
	state  *State
	queue  events.Queue
	logger *zap.Logger

	requestedGUID string
	device        input.Device
	selected      bool
	hasDevice     bool

	mappingMu sync.RWMutex
	mapping   input.Mapping

	debug    bool
	recorder Recorder

	// Wall-clock start of the current run, for the score record.
	runStarted time.Time
	recorded   bool
	lastLevel  int

	pressedBuf []ebiten.GamepadButton
}

// New assembles a game session around loaded media.
func New(m *media.Media, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		media:         m,
		state:         NewState(0, m.RunawayRun, m.ChaserRun, len(m.Levels)),
		logger:        logger,
		requestedGUID: opts.JoystickGUID,
		mapping:       opts.Mapping,
		debug:         opts.Debug,
		recorder:      opts.Recorder,
		runStarted:    time.Now(),
	}
}

// SetMapping swaps the button mapping; safe to call from the config
// watcher goroutine.
func (g *Game) SetMapping(m input.Mapping) {
	g.mappingMu.Lock()
	g.mapping = m
	g.mappingMu.Unlock()
	g.logger.Info("button mapping reloaded", zap.Int("buttons", m.Len()))
}

func (g *Game) currentMapping() input.Mapping {
	g.mappingMu.RLock()
	defer g.mappingMu.RUnlock()
	return g.mapping
}

// Update runs one fixed step: select the mat if needed, translate device
// input into events, append the tick and drain the queue.
func (g *Game) Update() error {
	if !g.selected {
		g.selected = true
		device, err := input.Select(input.Attached(), g.requestedGUID)
		switch {
		case err == nil:
			g.device = device
			g.hasDevice = true
			g.logger.Info("using joystick",
				zap.String("name", device.Name),
				zap.String("guid", device.GUID))
		case g.requestedGUID == "" && errors.Is(err, input.ErrNoJoysticks):
			// Playable without a mat; the keyboard still works and a mat
			// plugged in later is picked up.
			g.logger.Warn("no joystick attached")
		default:
			return fmt.Errorf("selecting joystick: %w", err)
		}
	}

	g.pollJoystick()
	g.pollKeyboard()

	g.queue.Push(events.Tick{Delta: 1.0 / float64(ebiten.TPS())})

	wasOver := g.state.GameOver != nil
	for !g.queue.Empty() {
		g.state.Handle(&g.queue)
	}
	g.afterFrame(wasOver)

	if g.state.ReceivedQuit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollJoystick() {
	if g.hasDevice && inpututil.IsGamepadJustDisconnected(g.device.ID) {
		g.hasDevice = false
		g.logger.Warn("joystick disconnected; waiting for one to return",
			zap.String("guid", g.device.GUID))
	}
	if !g.hasDevice {
		device, err := input.Select(input.Attached(), g.requestedGUID)
		if err != nil {
			return
		}
		g.device = device
		g.hasDevice = true
		g.logger.Info("joystick attached",
			zap.String("name", device.Name),
			zap.String("guid", device.GUID))
	}

	g.pressedBuf = inpututil.AppendJustPressedGamepadButtons(g.device.ID, g.pressedBuf[:0])
	mapping := g.currentMapping()
	for _, button := range g.pressedBuf {
		if pad, ok := mapping.Lookup(int(button)); ok {
			g.queue.Push(events.ButtonDown{Pad: pad})
		}
	}
}

func (g *Game) pollKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.queue.Push(events.ReceivedQuit{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.queue.Push(events.ReceivedRestart{})
	}
	if g.debug {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			g.queue.Push(events.ButtonDown{Pad: input.PadLeft})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			g.queue.Push(events.ButtonDown{Pad: input.PadRight})
		}
	}
}

// afterFrame records the run at the game-over transition and rearms after
// a restart.
func (g *Game) afterFrame(wasOver bool) {
	over := g.state.GameOver != nil

	if g.state.LevelIndex != g.lastLevel {
		if g.state.LevelIndex > g.lastLevel {
			g.logger.Info("level cleared",
				zap.Int("level", g.state.LevelIndex),
				zap.Float64("chaserVelocity", g.state.Chaser.Velocity))
		}
		g.lastLevel = g.state.LevelIndex
	}

	if over && !wasOver && !g.recorded {
		g.recorded = true
		g.recordRun()
	}
	if !over && g.recorded {
		// A restart happened after the last game over.
		g.recorded = false
		g.runStarted = time.Now()
	}
}

func (g *Game) recordRun() {
	outcome := scores.OutcomeCaught
	if g.state.GameOver.Kind == events.HappyEnd {
		outcome = scores.OutcomeEscaped
	}
	g.logger.Info("game over",
		zap.Stringer("kind", g.state.GameOver.Kind),
		zap.Int("level", g.state.LevelIndex),
		zap.Int("steps", g.state.Steps))

	if g.recorder == nil {
		return
	}
	run := scores.Run{
		StartedAt: g.runStarted,
		Duration:  time.Duration((g.state.Now - g.state.GameStart) * float64(time.Second)),
		Outcome:   outcome,
		Level:     g.state.LevelIndex,
		Steps:     g.state.Steps,
	}
	if err := g.recorder.Record(run); err != nil {
		// Score keeping must never take the game down.
		g.logger.Warn("failed to record run", zap.Error(err))
	}
}

// Layout fixes the logical scene size; Ebitengine scales it to the window
// with the aspect ratio preserved.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return media.SceneWidth, media.SceneHeight
}
