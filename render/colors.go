package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilequest/core"
)

// RGB color definitions for the status line and panels
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Black on mode block
	RgbStatusInfo = tcell.NewRGBColor(180, 180, 180) // Gray frame counter
	RgbPanelText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbSpeaker    = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbAudioOn    = tcell.NewRGBColor(0, 200, 0)
	RgbAudioOff   = tcell.NewRGBColor(120, 120, 120)

	RgbModeExploreBg  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeDialogueBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbModeCombatBg   = tcell.NewRGBColor(220, 60, 60)   // Red
	RgbModeCutsceneBg = tcell.NewRGBColor(150, 150, 150)
)

// toColor converts an engine color to a terminal true-color value
func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// modeBackground returns the status bar block color for a mode
func modeBackground(m core.GameMode) tcell.Color {
	switch m {
	case core.ModeDialogue:
		return RgbModeDialogueBg
	case core.ModeCombat:
		return RgbModeCombatBg
	case core.ModeCutscene:
		return RgbModeCutsceneBg
	default:
		return RgbModeExploreBg
	}
}
