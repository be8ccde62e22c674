package layout

import (
	"slices"
	"strings"

	"github.com/matzehuels/legendkit/pkg/legend/model"
)

// State is what a legend remembers between draws. [Compute] takes the
// previous State and returns the next one; it never keeps state itself.
type State struct {
	Position model.Position `json:"position"`

	// StartIndex is the first data point of the visible page.
	StartIndex int `json:"start_index"`
	// WindowSize is the page jump used by the next Advance.
	WindowSize int `json:"window_size"`
	// History holds the start of every page left by an Increase, so a
	// Decrease returns exactly to the page it came from.
	History []int `json:"history,omitempty"`

	// LastWidth is the width resolved by the last auto-width vertical draw.
	// Arrow navigation reuses it so the legend does not resize while paging.
	LastWidth float64 `json:"last_width"`

	Footprint model.Viewport `json:"footprint"`
	Visible   model.Viewport `json:"visible"`
}

// NewState returns the state of a legend that has not been drawn yet.
func NewState(p model.Position) State {
	return State{Position: Normalize(p), WindowSize: 1}
}

// Clamp limits start to [0, max(0, length-1)].
func Clamp(start, length int) int {
	if start >= length {
		start = length - 1
	}
	if start < 0 {
		start = 0
	}
	return start
}

// Advance moves the page by the size of the last computed window. The jump
// is at least one item so a page where nothing fit never stalls navigation.
// A Decrease after an Increase returns to the recorded page start instead,
// since the previous page may hold more items than the current one.
func (s State) Advance(d Direction) State {
	step := max(1, s.WindowSize)
	switch d {
	case Increase:
		s.History = append(slices.Clone(s.History), s.StartIndex)
		s.StartIndex += step
	case Decrease:
		if n := len(s.History); n > 0 {
			s.StartIndex = s.History[n-1]
			s.History = slices.Clone(s.History[:n-1])
			break
		}
		s.StartIndex -= step
	}
	return s
}

// clamp limits StartIndex to the data and forgets page starts beyond it.
func (s State) clamp(length int) State {
	s.StartIndex = Clamp(s.StartIndex, length)
	n := len(s.History)
	for n > 0 && s.History[n-1] >= s.StartIndex {
		n--
	}
	if n != len(s.History) {
		s.History = slices.Clone(s.History[:n])
	}
	if s.StartIndex == 0 {
		s.History = nil
	}
	return s
}

// HasPrevious reports whether a page precedes the current one.
func (s State) HasPrevious() bool { return s.StartIndex > 0 }

// paginate derives the arrows and the next window size once n items of the
// page starting at StartIndex have been placed. On the last page the window
// size is rolled back to the previous page's size, so a Decrease returns
// exactly to where the last Increase came from. Advance pops History when
// it has entries, so the rollback only matters for states without history,
// such as one built by hand at a non-zero StartIndex.
func (s State) paginate(n, total int) (State, []Direction) {
	var arrows []Direction
	if s.StartIndex > 0 {
		arrows = append(arrows, Decrease)
	}
	last := s.WindowSize
	s.WindowSize = n
	if n >= total-s.StartIndex {
		s.WindowSize = last
	} else {
		arrows = append(arrows, Increase)
	}
	return s, arrows
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
