package constants

import "time"

// Map extent, inclusive on both axes: valid coordinates are [0, MapExtentX] x [0, MapExtentY]
const (
	MapExtentX = 500
	MapExtentY = 500
)

// Viewport and camera dead-zone
const (
	ViewportWidth  = 50
	ViewportHeight = 20

	// CameraMarginX/Y is the distance from a viewport edge at which the camera starts following
	CameraMarginX = 5
	CameraMarginY = 3
)

// Game Loop Timing
const (
	// TickInterval paces input + render, one command per tick (~30 FPS)
	TickInterval = 32 * time.Millisecond

	// InputQueueSize is the capacity of the input pump channel
	InputQueueSize = 64
)
