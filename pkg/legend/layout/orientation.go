package layout

import "github.com/matzehuels/legendkit/pkg/legend/model"

// Normalize maps the unset position to Top.
func Normalize(p model.Position) model.Position {
	if p == "" {
		return model.PositionTop
	}
	return p
}

// IsTopOrBottom reports whether p lays items out in a horizontal row.
func IsTopOrBottom(p model.Position) bool {
	switch Normalize(p) {
	case model.PositionTop, model.PositionBottom, model.PositionTopCenter, model.PositionBottomCenter:
		return true
	}
	return false
}

// IsLeftOrRight reports whether p lays items out in a vertical column.
func IsLeftOrRight(p model.Position) bool {
	switch p {
	case model.PositionLeft, model.PositionRight, model.PositionLeftCenter, model.PositionRightCenter:
		return true
	}
	return false
}

// IsCentered reports whether p is one of the centered variants.
func IsCentered(p model.Position) bool {
	switch p {
	case model.PositionTopCenter, model.PositionBottomCenter, model.PositionLeftCenter, model.PositionRightCenter:
		return true
	}
	return false
}

func isBottom(p model.Position) bool {
	return p == model.PositionBottom || p == model.PositionBottomCenter
}

func isRight(p model.Position) bool {
	return p == model.PositionRight || p == model.PositionRightCenter
}
