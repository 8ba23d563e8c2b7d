package engine

import (
	"github.com/lixenwraith/tilequest/constants"
	"github.com/lixenwraith/tilequest/core"
)

// Config holds the world and camera dimensions
type Config struct {
	// Extent is the inclusive maximum coordinate on each axis
	Extent core.Point
	// Viewport is the visible window size in cells
	Viewport core.Point
	// Margin is the camera dead-zone distance from each viewport edge
	Margin core.Point
}

// DefaultConfig returns the compiled-in game configuration
func DefaultConfig() Config {
	return Config{
		Extent:   core.Point{X: constants.MapExtentX, Y: constants.MapExtentY},
		Viewport: core.Point{X: constants.ViewportWidth, Y: constants.ViewportHeight},
		Margin:   core.Point{X: constants.CameraMarginX, Y: constants.CameraMarginY},
	}
}
