package entity

// Cell - one board square, either empty or holding a disc.
type Cell struct {
	color    Color
	occupied bool
}

func (that *Cell) IsEmpty() bool {
	return !that.occupied
}

func (that *Cell) Color() (Color, bool) {
	return that.color, that.occupied
}

func (that *Cell) Put(color Color) {
	that.color = color
	that.occupied = true
}

// Flip - reverses the disc; empty cells stay empty.
func (that *Cell) Flip() {
	if !that.occupied {
		return
	}
	that.color = that.color.Opposite()
}

func (that *Cell) Glyph() string {
	if !that.occupied {
		return EmptyGlyph
	}
	return that.color.Glyph()
}
