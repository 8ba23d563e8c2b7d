package core

// Command is one discrete player action, at most one consumed per tick
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdConfirm
	CmdQuit
)

// Direction maps movement commands to unit vectors; confirm and none map to DirNone
func (c Command) Direction() Point {
	switch c {
	case CmdUp:
		return DirUp
	case CmdDown:
		return DirDown
	case CmdLeft:
		return DirLeft
	case CmdRight:
		return DirRight
	default:
		return DirNone
	}
}
