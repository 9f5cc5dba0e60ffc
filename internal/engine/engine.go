package engine

import (
	"errors"
	"regexp"
)

// Engine is the rules and search boundary the match core plays against. The
// orchestrator is the only caller; ownership of the underlying position
// alternates between the UI goroutine (PlayerMove and the read-only queries)
// and the compute worker (AIMove), never concurrently.
type Engine interface {
	// Board64 returns the current position as 64 characters, rank 8 down to
	// rank 1, file a to h. Uppercase letters are white pieces, lowercase
	// black, EmptySquare marks an empty square.
	Board64() string

	// LegalMoves returns every legal move for the side to move in UCI form
	// (4 characters, or 5 with a promotion suffix).
	LegalMoves() []string

	// PlayerMove attempts to apply a move for the side to move. Malformed or
	// illegal strings return false without side effects.
	PlayerMove(move string) bool

	// AIMove computes and applies the engine's chosen move for the side to
	// move, returning it in UCI form. Safe to call only from the compute
	// worker.
	AIMove() (string, error)

	// Status queries reflect the position after the most recent applied move.
	InCheck() bool
	IsCheckmate() bool
	IsStalemate() bool

	Close() error
}

// Annotator is an optional extension for HUD extras kept by an engine.
type Annotator interface {
	// LastMove returns a human-readable label for the most recent applied
	// move, e.g. "You: e2-e4" or "AI: e7e5".
	LastMove() string

	// Captured returns the pieces each side has captured so far, most recent
	// last, as board-letter strings.
	Captured() (byWhite, byBlack string)
}

// Transcript is an optional extension for engines that can replay the full
// game, used when archiving a finished match.
type Transcript interface {
	MovesUCI() []string
	PGN() string
}

// EmptySquare is the Board64 sentinel for an unoccupied square.
const EmptySquare = '.'

var (
	ErrNoLegalMoves = errors.New("no legal moves in current position")
	ErrGameFinished = errors.New("game already finished")
)

var moveRe = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)

// WellFormedMove reports whether s matches the UCI move shape. It says
// nothing about legality in any particular position.
func WellFormedMove(s string) bool {
	return moveRe.MatchString(s)
}
