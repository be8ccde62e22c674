package layout

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/legendkit/pkg/legend/model"
)

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// arrowPath is a right-pointing triangle in a w by h box.
func arrowPath(w, h float64) string {
	return fmt.Sprintf("M0 0 L0 %s L%s %s Z", num(h), num(w), num(h/2))
}

func rotate(angle, w, h float64) string {
	return fmt.Sprintf("rotate(%s %s %s)", num(angle), num(w/2), num(h/2))
}

// arrows positions the requested navigation controls. Row legends put them
// at the left and right ends of the row; column legends at the top and
// bottom of the column.
func (p *pass) arrows(dirs []Direction, title *TitleLayout, footprint model.Viewport) []NavigationArrow {
	if len(dirs) == 0 {
		return nil
	}
	w, h := p.cfg.ArrowWidth, p.cfg.ArrowHeight
	path := arrowPath(w, h)

	out := make([]NavigationArrow, 0, len(dirs))
	for _, d := range dirs {
		a := NavigationArrow{Path: path, DataType: d}
		var angle float64
		if IsTopOrBottom(p.pos) {
			a.Y = footprint.Height/2 - h/2
			if d == Decrease {
				if title != nil {
					a.X = title.Width
				}
				angle = 180
			} else {
				a.X = p.parent.Width - w
			}
		} else {
			a.X = footprint.Width/2 - w/2
			if d == Decrease {
				a.Y = w
				if title != nil {
					a.Y += title.Height * float64(title.Rows())
				}
				angle = 270
			} else {
				a.Y = p.parent.Height - h
				angle = 90
			}
		}
		a.RotateTransform = rotate(angle, w, h)
		out = append(out, a)
	}
	return out
}
