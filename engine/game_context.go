package engine

import (
	"log"
	"math/rand/v2"

	"github.com/lixenwraith/tilequest/constants"
	"github.com/lixenwraith/tilequest/core"
)

// Roller returns a uniform integer in [1, constants.FleeRollMax]
type Roller func() int

// DefaultRoller draws from the global math/rand source
func DefaultRoller() int {
	return rand.IntN(constants.FleeRollMax) + 1
}

// AudioHandle is the startup-initialized audio subsystem. No gameplay triggers playback
type AudioHandle interface {
	IsInitialized() bool
}

// GameContext is the session: the world plus everything the interaction state machine owns.
// It is passed by reference to every operation; there is no global state.
type GameContext struct {
	Config Config
	World  *World

	// Mode selects which handler consumes commands
	Mode core.GameMode

	// Camera is the world coordinate drawn at the viewport's top-left cell
	Camera core.Point

	// Active interaction and per-mode cursors; meaningful only outside Exploration
	Active   ActiveInteraction
	Dialogue DialogueState
	Combat   CombatState

	// Roll drives the flee check, replaceable in tests
	Roll Roller

	Audio AudioHandle

	frameNumber uint64
}

// NewGameContext creates a session in Exploration mode with the camera at the origin
func NewGameContext(cfg Config, world *World) *GameContext {
	return &GameContext{
		Config: cfg,
		World:  world,
		Mode:   core.ModeExploration,
		Roll:   DefaultRoller,
	}
}

// IncrementFrameNumber advances the tick counter shown in the status bar
func (g *GameContext) IncrementFrameNumber() {
	g.frameNumber++
}

// GetFrameNumber returns the current tick counter
func (g *GameContext) GetFrameNumber() uint64 {
	return g.frameNumber
}

// HandleCommand processes one command in the current mode. Returns false on quit
func (g *GameContext) HandleCommand(cmd core.Command) bool {
	if cmd == core.CmdQuit {
		return false
	}
	if cmd == core.CmdNone {
		return true
	}

	switch g.Mode {
	case core.ModeExploration:
		g.handleExploration(cmd)
	case core.ModeDialogue:
		g.handleDialogue(cmd)
	case core.ModeCombat:
		g.handleCombat(cmd)
	case core.ModeCutscene:
		// Reserved: no transitions defined
	}
	return true
}

func (g *GameContext) handleExploration(cmd core.Command) {
	if cmd == core.CmdConfirm {
		g.TriggerInteraction()
		return
	}
	g.MovePlayer(cmd.Direction())
}

// MovePlayer moves the avatar and, on success, follows with the camera and refreshes
// the roof marker used to hide the ceiling above it
func (g *GameContext) MovePlayer(dir core.Point) MoveResult {
	player := g.World.Player()
	if player == nil {
		return MoveRejected
	}

	result := g.World.MoveEntity(player.ID, dir)
	if !result.Accepted() {
		return result
	}

	g.Camera = FollowCamera(g.Camera, player.Position, dir, g.Config.Viewport, g.Config.Margin)
	g.World.RefreshOverhead()
	return result
}

// activeTarget resolves the recorded interaction, failing if state has drifted
func (g *GameContext) activeTarget(kind InteractionKind) (*Entity, *Interaction, bool) {
	e, ok := g.World.Spatial.Lookup(g.Active.Position)
	if !ok {
		return nil, nil, false
	}
	if g.Active.Index < 0 || g.Active.Index >= len(e.Interactions) {
		return nil, nil, false
	}
	in := &e.Interactions[g.Active.Index]
	if in.Kind != kind {
		return nil, nil, false
	}
	if kind == InteractionDialogue && (in.Dialogue == nil || len(in.Dialogue.Nodes) == 0) {
		return nil, nil, false
	}
	return e, in, true
}

// abortInteraction is the guard for inconsistent cursor state: log and fall back to Exploration
func (g *GameContext) abortInteraction(reason string) {
	log.Printf("interaction: %s at %v index %d: %v", reason, g.Active.Position, g.Active.Index, ErrMissingInteraction)
	g.returnToExploration()
}

func (g *GameContext) returnToExploration() {
	g.Mode = core.ModeExploration
	g.Active = ActiveInteraction{}
	g.Dialogue = DialogueState{}
	g.Combat = CombatState{}
}

// clampIndex bounds i to [0, n-1], or 0 when n is 0
func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
