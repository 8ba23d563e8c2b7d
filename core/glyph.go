package core

// Glyph is what a single map cell displays
type Glyph struct {
	Rune  rune
	Color RGB
}

// GlyphBlank is drawn for cells outside the map extent
var GlyphBlank = Glyph{Rune: ' ', Color: RGBBlack}
