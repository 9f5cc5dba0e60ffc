package match

import "strings"

// MoveSelector turns a pair of pointer-downs into a move attempt: the first
// press picks a piece and its highlight targets, the second builds the move
// string. It always returns to the idle state after the second press,
// whatever the engine thinks of the move.
type MoveSelector struct {
	selected *Square
	targets  []Square
}

func NewMoveSelector() *MoveSelector {
	return &MoveSelector{}
}

// Selecting reports whether a piece is currently picked.
func (m *MoveSelector) Selecting() bool {
	return m.selected != nil
}

// Selected returns the picked square while one is armed.
func (m *MoveSelector) Selected() (Square, bool) {
	if m.selected == nil {
		return Square{}, false
	}
	return *m.selected, true
}

// Targets returns the highlight squares for the current selection.
func (m *MoveSelector) Targets() []Square {
	return m.targets
}

// Select records the first press. legalMoves is the engine's move list for
// the side to move; targets are the destinations of moves leaving sq. An
// empty target set is allowed, it simply highlights nothing.
func (m *MoveSelector) Select(sq Square, legalMoves []string) {
	prefix := sq.Algebraic()
	var targets []Square
	for _, mv := range legalMoves {
		if !strings.HasPrefix(mv, prefix) || len(mv) < 4 {
			continue
		}
		to, err := ParseSquare(mv[2:4])
		if err != nil {
			continue
		}
		// Promotion variants share a destination; highlight it once.
		dup := false
		for _, have := range targets {
			if have == to {
				dup = true
				break
			}
		}
		if !dup {
			targets = append(targets, to)
		}
	}
	picked := sq
	m.selected = &picked
	m.targets = targets
}

// Complete consumes the selection on the second press and returns the move
// string from the selected square to sq. ok is false when nothing was
// selected.
func (m *MoveSelector) Complete(sq Square) (move string, ok bool) {
	if m.selected == nil {
		return "", false
	}
	move = m.selected.Algebraic() + sq.Algebraic()
	m.Reset()
	return move, true
}

// Reset drops any pending selection and its highlights.
func (m *MoveSelector) Reset() {
	m.selected = nil
	m.targets = nil
}
