package engine

import (
	"strings"
	"testing"
)

func newTestEngine(t *testing.T, level int, opts ...LocalOption) *Local {
	t.Helper()
	eng, err := NewLocal(level, opts...)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	return eng
}

func TestBoard64StartPosition(t *testing.T) {
	eng := newTestEngine(t, 1)
	board := eng.Board64()
	if len(board) != 64 {
		t.Fatalf("board length = %d, want 64", len(board))
	}
	// Rank 8 comes first, so index 0 is a8.
	if board[0] != 'r' || board[4] != 'k' {
		t.Fatalf("black back rank wrong: %q", board[:8])
	}
	if board[56] != 'R' || board[60] != 'K' {
		t.Fatalf("white back rank wrong: %q", board[56:])
	}
	if board[24] != EmptySquare {
		t.Fatalf("middle of the board not empty: %q", board[24])
	}
}

func TestPlayerMoveAppliesAndRejects(t *testing.T) {
	eng := newTestEngine(t, 1)

	before := eng.Board64()
	if eng.PlayerMove("e2e5") {
		t.Fatalf("illegal pawn jump accepted")
	}
	if eng.PlayerMove("e1e9") {
		t.Fatalf("out-of-board destination accepted")
	}
	if eng.PlayerMove("zz99") {
		t.Fatalf("malformed move accepted")
	}
	if eng.Board64() != before {
		t.Fatalf("rejected moves changed the board")
	}

	if !eng.PlayerMove("e2e4") {
		t.Fatalf("e2e4 rejected in the start position")
	}
	after := eng.Board64()
	diff := 0
	for i := range after {
		if after[i] != before[i] {
			diff++
		}
	}
	if diff != 2 {
		t.Fatalf("e2e4 changed %d squares, want 2", diff)
	}
	if got := eng.LastMove(); got != "You: e2-e4" {
		t.Fatalf("last move label = %q", got)
	}
}

func TestPlayerMoveDrivesBothSides(t *testing.T) {
	eng := newTestEngine(t, 1)
	if !eng.PlayerMove("e2e4") {
		t.Fatalf("white move rejected")
	}
	if !eng.PlayerMove("e7e5") {
		t.Fatalf("black move rejected after white's")
	}
	if moves := eng.MovesUCI(); len(moves) != 2 || moves[1] != "e7e5" {
		t.Fatalf("move list = %v", moves)
	}
}

func TestAutoQueenPromotion(t *testing.T) {
	eng := newTestEngine(t, 1, WithFEN("8/P7/8/8/8/8/8/k6K w - - 0 1"))
	if !eng.PlayerMove("a7a8") {
		t.Fatalf("bare promotion push rejected")
	}
	if got := eng.Board64()[0]; got != 'Q' {
		t.Fatalf("a8 holds %q after promotion, want Q", got)
	}
}

func TestAIMoveAdvancesGame(t *testing.T) {
	eng := newTestEngine(t, 1, WithSeed(7))
	if !eng.PlayerMove("e2e4") {
		t.Fatalf("e2e4 rejected")
	}
	mv, err := eng.AIMove()
	if err != nil {
		t.Fatalf("AIMove: %v", err)
	}
	if !WellFormedMove(mv) {
		t.Fatalf("ai produced malformed move %q", mv)
	}
	if got := eng.LastMove(); !strings.HasPrefix(got, "AI: ") {
		t.Fatalf("last move label = %q", got)
	}
	if moves := eng.MovesUCI(); len(moves) != 2 {
		t.Fatalf("move list after ai reply = %v", moves)
	}
}

func TestAIMoveErrorsWhenFinished(t *testing.T) {
	// Fool's mate: white is mated with no legal moves left.
	eng := newTestEngine(t, 1)
	for _, mv := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if !eng.PlayerMove(mv) {
			t.Fatalf("scripted move %s rejected", mv)
		}
	}
	if !eng.IsCheckmate() {
		t.Fatalf("fool's mate not detected")
	}
	if _, err := eng.AIMove(); err == nil {
		t.Fatalf("AIMove succeeded in a finished game")
	}
}

func TestCheckDetection(t *testing.T) {
	eng := newTestEngine(t, 1)
	for _, mv := range []string{"e2e4", "f7f6", "d1h5"} {
		if !eng.PlayerMove(mv) {
			t.Fatalf("scripted move %s rejected", mv)
		}
	}
	if !eng.InCheck() {
		t.Fatalf("queen check not detected")
	}
	if eng.IsCheckmate() {
		t.Fatalf("check misreported as mate")
	}
}

func TestStalemateDetection(t *testing.T) {
	// Classic king-and-queen stalemate: black king on a8, white queen
	// covers every escape square.
	eng := newTestEngine(t, 1, WithFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1"))
	if !eng.IsStalemate() {
		t.Fatalf("stalemate not detected")
	}
	if eng.IsCheckmate() {
		t.Fatalf("stalemate misreported as mate")
	}
}

func TestCapturedLedger(t *testing.T) {
	eng := newTestEngine(t, 1)
	for _, mv := range []string{"e2e4", "d7d5", "e4d5", "d8d5"} {
		if !eng.PlayerMove(mv) {
			t.Fatalf("scripted move %s rejected", mv)
		}
	}
	byWhite, byBlack := eng.Captured()
	if byWhite != "p" {
		t.Fatalf("white captures = %q, want p", byWhite)
	}
	if byBlack != "P" {
		t.Fatalf("black captures = %q, want P", byBlack)
	}
}

func TestSetLevelClamps(t *testing.T) {
	eng := newTestEngine(t, 99)
	if eng.Preset().Name != "level8" {
		t.Fatalf("level 99 mapped to %s", eng.Preset().Name)
	}
	eng.SetLevel(-3)
	if eng.Preset().Name != "level1" {
		t.Fatalf("level -3 mapped to %s", eng.Preset().Name)
	}
}
