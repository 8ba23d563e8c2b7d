package core

// GameMode selects which interaction state consumes input
type GameMode uint8

const (
	ModeExploration GameMode = iota
	ModeDialogue
	ModeCombat
	ModeCutscene // Reserved, no transitions in or out
)

func (m GameMode) String() string {
	switch m {
	case ModeExploration:
		return "EXPLORE"
	case ModeDialogue:
		return "DIALOGUE"
	case ModeCombat:
		return "COMBAT"
	case ModeCutscene:
		return "CUTSCENE"
	default:
		return "UNKNOWN"
	}
}
