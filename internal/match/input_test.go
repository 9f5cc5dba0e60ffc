package match

import "testing"

func sq(t *testing.T, s string) Square {
	t.Helper()
	q, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return q
}

func TestSelectorTwoClickFlow(t *testing.T) {
	legal := []string{"e2e4", "e2e3", "g1f3", "b1c3"}
	sel := NewMoveSelector()

	sel.Select(sq(t, "e2"), legal)
	if !sel.Selecting() {
		t.Fatalf("selector idle after first click")
	}
	targets := sel.Targets()
	if len(targets) != 2 {
		t.Fatalf("targets = %v, want e3 and e4", targets)
	}

	move, ok := sel.Complete(sq(t, "e4"))
	if !ok || move != "e2e4" {
		t.Fatalf("Complete = %q, %v; want e2e4", move, ok)
	}
	if sel.Selecting() {
		t.Fatalf("selector still armed after completing a move")
	}
}

func TestSelectorArmsWithoutTargets(t *testing.T) {
	sel := NewMoveSelector()
	sel.Select(sq(t, "e5"), []string{"e2e4"})
	if !sel.Selecting() {
		t.Fatalf("square with no moves did not arm the selector")
	}
	if len(sel.Targets()) != 0 {
		t.Fatalf("targets appeared from nowhere: %v", sel.Targets())
	}

	// The second press still consumes the selection; the engine is the one
	// that rejects the resulting move.
	move, ok := sel.Complete(sq(t, "e6"))
	if !ok || move != "e5e6" {
		t.Fatalf("Complete = %q, %v", move, ok)
	}
	if sel.Selecting() {
		t.Fatalf("selector armed after two presses")
	}
}

func TestSelectorSecondClickOffTargetResets(t *testing.T) {
	sel := NewMoveSelector()
	sel.Select(sq(t, "e2"), []string{"e2e4", "e2e3"})

	// The second press always builds the move; the engine is the arbiter of
	// legality, not the highlight set.
	move, ok := sel.Complete(sq(t, "h8"))
	if !ok || move != "e2h8" {
		t.Fatalf("Complete = %q, %v; want e2h8", move, ok)
	}
	if sel.Selecting() {
		t.Fatalf("selector stayed armed after an off-target click")
	}
	if len(sel.Targets()) != 0 {
		t.Fatalf("highlights survived the second press: %v", sel.Targets())
	}
}

func TestSelectorPromotionTargets(t *testing.T) {
	sel := NewMoveSelector()
	sel.Select(sq(t, "a7"), []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"})
	if got := sel.Targets(); len(got) != 1 || got[0] != sq(t, "a8") {
		t.Fatalf("promotion targets = %v, want only a8", got)
	}
}
