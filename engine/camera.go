package engine

import "github.com/lixenwraith/tilequest/core"

// FollowCamera returns the camera offset after the tracked entity moved in dir to pos.
// Each axis scrolls by exactly the move delta once pos leaves the interior dead zone.
func FollowCamera(camera, pos, dir, viewport, margin core.Point) core.Point {
	return core.Point{
		X: followAxis(camera.X, pos.X, dir.X, viewport.X, margin.X),
		Y: followAxis(camera.Y, pos.Y, dir.Y, viewport.Y, margin.Y),
	}
}

func followAxis(camera, pos, dir, size, margin int) int {
	rel := pos - camera
	switch {
	case dir < 0 && rel < margin:
		return camera + dir
	case dir > 0 && rel >= size-margin:
		return camera + dir
	}
	return camera
}
