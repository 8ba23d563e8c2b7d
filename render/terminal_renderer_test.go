package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilequest/constants"
	"github.com/lixenwraith/tilequest/core"
	"github.com/lixenwraith/tilequest/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenWidth  = 80
	screenHeight = 30
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(screenWidth, screenHeight)
	t.Cleanup(screen.Fini)
	return screen
}

// readRow returns the runes of screen row y with trailing blanks trimmed
func readRow(screen tcell.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < screenWidth; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
	}
	return strings.TrimRight(sb.String(), " ")
}

func isReversed(screen tcell.Screen, x, y int) bool {
	_, _, style, _ := screen.GetContent(x, y)
	_, _, attrs := style.Decompose()
	return attrs&tcell.AttrReverse != 0
}

type fakeAudio bool

func (a fakeAudio) IsInitialized() bool { return bool(a) }

func TestRenderFrame_Viewport(t *testing.T) {
	screen := newSimScreen(t)
	ctx := engine.NewTestGameContext(core.Point{X: 30, Y: 30}, core.Point{X: 6, Y: 5})
	_, err := ctx.World.NewEntity(engine.KindMovable, core.Point{X: 7, Y: 3}).WithGlyph(engine.TestBlockGlyph).Spawn()
	require.NoError(t, err)

	NewTerminalRenderer(screen).RenderFrame(ctx)

	mainc, _, style, _ := screen.GetContent(6, constants.ViewportTop+5)
	assert.Equal(t, '@', mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, RgbBackground, bg)

	mainc, _, _, _ = screen.GetContent(7, constants.ViewportTop+3)
	assert.Equal(t, '1', mainc)

	mainc, _, _, _ = screen.GetContent(0, constants.ViewportTop)
	assert.Equal(t, '.', mainc)

	// Extent is 30, the viewport 50 wide: columns past the edge stay blank
	assert.Equal(t, strings.Repeat(".", 31), readRow(screen, constants.ViewportTop))
}

func TestRenderFrame_CameraOffset(t *testing.T) {
	screen := newSimScreen(t)
	ctx := engine.NewTestGameContext(core.Point{X: 100, Y: 100}, core.Point{X: 12, Y: 8})
	ctx.Camera = core.Point{X: 10, Y: 5}

	NewTerminalRenderer(screen).RenderFrame(ctx)

	mainc, _, _, _ := screen.GetContent(2, constants.ViewportTop+3)
	assert.Equal(t, '@', mainc)
}

func TestRenderFrame_StatusBar(t *testing.T) {
	screen := newSimScreen(t)
	ctx := engine.NewTestGameContext(core.Point{X: 30, Y: 30}, core.Point{X: 6, Y: 5})
	ctx.IncrementFrameNumber()
	ctx.IncrementFrameNumber()

	r := NewTerminalRenderer(screen)
	r.RenderFrame(ctx)
	row := readRow(screen, constants.StatusBarRow)
	assert.Equal(t, " EXPLORE  F:2 (6, 5) SND OFF", row)

	ctx.Audio = fakeAudio(true)
	r.RenderFrame(ctx)
	assert.Contains(t, readRow(screen, constants.StatusBarRow), "SND ON")
}

func TestRenderFrame_DialoguePanel(t *testing.T) {
	screen := newSimScreen(t)
	ctx := engine.NewTestGameContext(core.Point{X: 30, Y: 30}, core.Point{X: 6, Y: 5})
	talk, err := engine.NewDialogue(
		engine.DialogueNode{Text: "Select one", Choices: []string{"this", "or this"}, Jumps: []int{1, 2}},
		engine.DialogueNode{Text: "this"},
		engine.DialogueNode{Text: "or this"},
	)
	require.NoError(t, err)
	_, err = ctx.World.NewEntity(engine.KindStatic, core.Point{X: 6, Y: 4}).
		WithName("sage").
		WithInteraction(talk).
		Spawn()
	require.NoError(t, err)

	r := NewTerminalRenderer(screen)
	panelY := constants.ViewportTop + ctx.Config.Viewport.Y + 1

	r.RenderFrame(ctx)
	assert.Empty(t, readRow(screen, panelY), "no panel while exploring")

	ctx.HandleCommand(core.CmdConfirm)
	r.RenderFrame(ctx)
	assert.Equal(t, " DIALOGUE", readRow(screen, constants.StatusBarRow)[:9])
	assert.Equal(t, "sage: Select one", readRow(screen, panelY))
	assert.Equal(t, " this   or this", readRow(screen, panelY+1))
	assert.True(t, isReversed(screen, 1, panelY+1))
	assert.False(t, isReversed(screen, 8, panelY+1))

	ctx.HandleCommand(core.CmdRight)
	r.RenderFrame(ctx)
	assert.False(t, isReversed(screen, 1, panelY+1))
	assert.True(t, isReversed(screen, 8, panelY+1))

	ctx.HandleCommand(core.CmdConfirm)
	r.RenderFrame(ctx)
	assert.Equal(t, "sage: or this", readRow(screen, panelY))
	assert.Empty(t, readRow(screen, panelY+1))
}

func TestRenderFrame_CombatPanel(t *testing.T) {
	screen := newSimScreen(t)
	ctx := engine.NewTestGameContext(core.Point{X: 30, Y: 30}, core.Point{X: 6, Y: 5})
	_, err := ctx.World.NewEntity(engine.KindStatic, core.Point{X: 7, Y: 6}).
		WithName("slime").
		WithStats(engine.NewStats(2, 1, 9, 12)).
		WithInteraction(engine.NewCombat()).
		Spawn()
	require.NoError(t, err)
	ctx.Roll = func() int { return constants.FleeRollMax }

	r := NewTerminalRenderer(screen)
	panelY := constants.ViewportTop + ctx.Config.Viewport.Y + 1

	ctx.HandleCommand(core.CmdConfirm)
	r.RenderFrame(ctx)
	assert.Equal(t, "slime HP 12/12", readRow(screen, panelY))
	assert.Equal(t, " Fight   Run", readRow(screen, panelY+1))
	assert.True(t, isReversed(screen, 1, panelY+1))

	ctx.HandleCommand(core.CmdRight)
	ctx.HandleCommand(core.CmdConfirm)
	r.RenderFrame(ctx)
	assert.True(t, isReversed(screen, 9, panelY+1))
	assert.Equal(t, "Couldn't escape! Retaliations pending: 1", readRow(screen, panelY+2))
}

// countingScreen records the calls the renderer makes
type countingScreen struct {
	tcell.Screen
	clears, shows, cells int
}

func (s *countingScreen) Clear() { s.clears++ }
func (s *countingScreen) Show()  { s.shows++ }
func (s *countingScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.cells++
}

func TestRenderFrame_OneClearAndShowPerFrame(t *testing.T) {
	screen := &countingScreen{}
	ctx := engine.NewTestGameContext(core.Point{X: 30, Y: 30}, core.Point{X: 6, Y: 5})

	NewTerminalRenderer(screen).RenderFrame(ctx)
	assert.Equal(t, 1, screen.clears)
	assert.Equal(t, 1, screen.shows)
	assert.GreaterOrEqual(t, screen.cells, ctx.Config.Viewport.X*ctx.Config.Viewport.Y)
}
