package model

import "strings"

// Position is the placement of a legend relative to its parent chart area.
type Position string

const (
	PositionNone         Position = "None"
	PositionTop          Position = "Top"
	PositionBottom       Position = "Bottom"
	PositionLeft         Position = "Left"
	PositionRight        Position = "Right"
	PositionTopCenter    Position = "TopCenter"
	PositionBottomCenter Position = "BottomCenter"
	PositionLeftCenter   Position = "LeftCenter"
	PositionRightCenter  Position = "RightCenter"
)

// Positions lists every placement, None included.
var Positions = []Position{
	PositionNone,
	PositionTop, PositionBottom, PositionLeft, PositionRight,
	PositionTopCenter, PositionBottomCenter, PositionLeftCenter, PositionRightCenter,
}

// ParsePosition converts a case-insensitive name into a Position.
// Both "TopCenter" and "top-center" spellings are accepted.
func ParsePosition(s string) (Position, bool) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, p := range Positions {
		if strings.ToLower(string(p)) == norm {
			return p, true
		}
	}
	return "", false
}

func (p Position) String() string { return string(p) }
