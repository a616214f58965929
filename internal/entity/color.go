package entity

import (
	"errors"
	"fmt"
)

type Color uint8

const (
	Black Color = iota + 1
	White
)

const (
	BlackGlyph = "●"
	WhiteGlyph = "o"
	EmptyGlyph = " "
)

var ErrUnknownColor = errors.New("unknown color")

// Opposite - returns the other player's color.
func (that Color) Opposite() Color {
	if that == Black {
		return White
	}
	return Black
}

func (that Color) IsValid() bool {
	return that == Black || that == White
}

func (that Color) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// Name - returns the capitalized name used in console messages.
func (that Color) Name() string {
	switch that {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

func (that Color) Glyph() string {
	if that == Black {
		return BlackGlyph
	}
	return WhiteGlyph
}

func ParseColor(name string) (Color, error) {
	switch name {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
}
