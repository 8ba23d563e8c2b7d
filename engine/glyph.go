package engine

import "github.com/lixenwraith/tilequest/core"

// GlyphAt resolves what a map cell shows. Priority: avatar, then ceilings not in the
// roof above the avatar, then collidable entities, then ground.
func (w *World) GlyphAt(p core.Point) core.Glyph {
	if !w.Spatial.InBounds(p) {
		return core.GlyphBlank
	}

	player := w.Player()
	if player != nil && player.Position == p {
		return player.Glyph
	}

	if c, ok := w.Spatial.CeilingAt(p); ok && !w.roofHidden(c.CeilingGroup) {
		return c.Glyph
	}

	if e, ok := w.Spatial.Lookup(p); ok {
		return e.Glyph
	}

	return w.Ground
}

// roofHidden reports whether the avatar stands under roof id
func (w *World) roofHidden(id CeilingGroupID) bool {
	player := w.Player()
	return player != nil && player.Overhead != NoCeilingGroup && player.Overhead == id
}
