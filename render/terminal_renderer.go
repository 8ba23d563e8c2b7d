package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilequest/constants"
	"github.com/lixenwraith/tilequest/core"
	"github.com/lixenwraith/tilequest/engine"
)

// Screen is the slice of tcell.Screen the renderer draws through
type Screen interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// TerminalRenderer composes one frame: status line, map viewport, mode panel
type TerminalRenderer struct {
	screen       Screen
	defaultStyle tcell.Style
}

// NewTerminalRenderer creates a renderer drawing onto screen
func NewTerminalRenderer(screen Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:       screen,
		defaultStyle: tcell.StyleDefault.Background(RgbBackground),
	}
}

// RenderFrame draws the whole frame for the current session state
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	r.screen.Clear()

	r.drawStatusBar(ctx)
	r.drawViewport(ctx)

	panelY := constants.ViewportTop + ctx.Config.Viewport.Y + 1
	switch ctx.Mode {
	case core.ModeDialogue:
		r.drawDialogue(ctx, panelY)
	case core.ModeCombat:
		r.drawCombat(ctx, panelY)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawStatusBar(ctx *engine.GameContext) {
	y := constants.StatusBarRow

	for x := 0; x < ctx.Config.Viewport.X; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.defaultStyle)
	}

	modeText := " " + ctx.Mode.String() + " "
	modeStyle := r.defaultStyle.Foreground(RgbStatusText).Background(modeBackground(ctx.Mode))
	x := r.drawText(0, y, modeText, modeStyle)

	infoStyle := r.defaultStyle.Foreground(RgbStatusInfo)
	x = r.drawText(x+1, y, fmt.Sprintf("F:%d", ctx.GetFrameNumber()), infoStyle)

	if p := ctx.World.Player(); p != nil {
		x = r.drawText(x+1, y, p.Position.String(), infoStyle)
	}

	audioText, audioColor := "SND OFF", RgbAudioOff
	if ctx.Audio != nil && ctx.Audio.IsInitialized() {
		audioText, audioColor = "SND ON", RgbAudioOn
	}
	r.drawText(x+1, y, audioText, r.defaultStyle.Foreground(audioColor))
}

// drawViewport resolves every visible cell through the world's display priority
func (r *TerminalRenderer) drawViewport(ctx *engine.GameContext) {
	size := ctx.Config.Viewport
	for dy := 0; dy < size.Y; dy++ {
		for dx := 0; dx < size.X; dx++ {
			g := ctx.World.GlyphAt(ctx.Camera.Add(core.Point{X: dx, Y: dy}))
			style := r.defaultStyle.Foreground(toColor(g.Color))
			r.screen.SetContent(dx, constants.ViewportTop+dy, g.Rune, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawDialogue(ctx *engine.GameContext, y int) {
	view, ok := ctx.DialogueView()
	if !ok {
		return
	}

	x := 0
	if view.Speaker != "" {
		x = r.drawText(0, y, view.Speaker+": ", r.defaultStyle.Foreground(RgbSpeaker))
	}
	r.drawText(x, y, view.Text, r.defaultStyle.Foreground(RgbPanelText))

	r.drawMenu(y+1, view.Choices, view.Selected)
}

func (r *TerminalRenderer) drawCombat(ctx *engine.GameContext, y int) {
	view, ok := ctx.CombatView()
	if !ok {
		return
	}

	x := r.drawText(0, y, view.Enemy, r.defaultStyle.Foreground(RgbEnemy))
	r.drawText(x+1, y, fmt.Sprintf("HP %d/%d", view.Health, view.MaxHealth), r.defaultStyle.Foreground(RgbPanelText))

	r.drawMenu(y+1, view.Options[:], view.Selected)

	status := ""
	if view.LastFlee == engine.FleeFailed {
		status = "Couldn't escape!"
	}
	if view.PendingRetaliations > 0 {
		status += fmt.Sprintf(" Retaliations pending: %d", view.PendingRetaliations)
	}
	if status != "" {
		r.drawText(0, y+2, status, r.defaultStyle.Foreground(RgbStatusInfo))
	}
}

// drawMenu lays entries out on one row, the selected entry reversed
func (r *TerminalRenderer) drawMenu(y int, entries []string, selected int) {
	x := 0
	style := r.defaultStyle.Foreground(RgbPanelText)
	for i, entry := range entries {
		s := style
		if i == selected {
			s = s.Reverse(true)
		}
		x = r.drawText(x, y, " "+entry+" ", s) + 1
	}
}

// drawText writes s starting at (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
