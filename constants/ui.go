package constants

// Screen layout, in terminal rows. The dialogue/combat panel starts one row below the viewport
const (
	// StatusBarRow holds the frame counter and mode name
	StatusBarRow = 0

	// ViewportTop is the first row of the map viewport
	ViewportTop = 2
)
