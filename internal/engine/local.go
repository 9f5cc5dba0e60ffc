package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	nchess "github.com/corentings/chess/v2"
)

// Local is the built-in engine: corentings/chess for rules and notation, an
// alpha-beta search for move selection. It keeps no locks; the match core
// guarantees a single writer at a time.
type Local struct {
	game        *nchess.Game
	preset      DifficultyPreset
	rand        *rand.Rand
	tt          *transTable
	lastApplied *nchess.Move
	lastLabel   string
	capturedBy  map[nchess.Color][]byte
}

type LocalOption func(*Local) error

// WithFEN starts the game from an arbitrary position.
func WithFEN(fen string) LocalOption {
	return func(l *Local) error {
		opt, err := nchess.FEN(fen)
		if err != nil {
			return fmt.Errorf("parse fen: %w", err)
		}
		l.game = nchess.NewGame(opt)
		return nil
	}
}

// WithSeed fixes the random source, for reproducible tests.
func WithSeed(seed int64) LocalOption {
	return func(l *Local) error {
		l.rand = rand.New(rand.NewSource(seed))
		return nil
	}
}

func NewLocal(level int, opts ...LocalOption) (*Local, error) {
	l := &Local{
		game:   nchess.NewGame(),
		preset: PresetForLevel(level),
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		tt:     newTransTable(),
		capturedBy: map[nchess.Color][]byte{
			nchess.White: nil,
			nchess.Black: nil,
		},
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	if err := ValidatePreset(l.preset); err != nil {
		return nil, err
	}
	return l, nil
}

// SetLevel switches the difficulty preset and drops cached search results.
func (l *Local) SetLevel(level int) {
	l.preset = PresetForLevel(level)
	l.tt.reset()
}

func (l *Local) Preset() DifficultyPreset { return l.preset }

func (l *Local) Board64() string {
	board := l.game.Position().Board()
	var sb strings.Builder
	sb.Grow(64)
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sq := nchess.NewSquare(nchess.File(f), nchess.Rank(r))
			sb.WriteByte(pieceLetter(board.Piece(sq)))
		}
	}
	return sb.String()
}

func (l *Local) LegalMoves() []string {
	valid := l.game.ValidMoves()
	out := make([]string, 0, len(valid))
	for _, mv := range valid {
		out = append(out, mv.String())
	}
	return out
}

func (l *Local) PlayerMove(move string) bool {
	s := strings.ToLower(strings.TrimSpace(move))
	if !WellFormedMove(s) {
		return false
	}
	if l.game.Outcome() != nchess.NoOutcome {
		return false
	}
	for _, mv := range l.game.ValidMoves() {
		str := mv.String()
		// A bare from-to that names a promotion is auto-queened.
		if str != s && !(len(s) == 4 && str == s+"q") {
			continue
		}
		if err := l.apply(&mv); err != nil {
			return false
		}
		l.lastLabel = fmt.Sprintf("You: %s-%s", s[0:2], s[2:4])
		return true
	}
	return false
}

func (l *Local) AIMove() (string, error) {
	if l.game.Outcome() != nchess.NoOutcome {
		return "", ErrGameFinished
	}
	pos := l.game.Position()
	moves := pos.ValidMoves()
	if len(moves) == 0 {
		return "", ErrNoLegalMoves
	}

	depth := l.preset.Depth
	// Deep endgame kick: with a queen-and-rook-sized material edge on the
	// board the tree is narrow enough to afford two extra plies.
	if diff := materialDiff(pos); diff > 1500 || diff < -1500 {
		depth += 2
	}

	mv := searchBestMove(pos, depth, l.preset, l.rand, l.tt)
	if mv == nil {
		return "", ErrNoLegalMoves
	}
	if err := l.apply(mv); err != nil {
		return "", fmt.Errorf("apply searched move %s: %w", mv.String(), err)
	}
	l.lastLabel = "AI: " + mv.String()
	return mv.String(), nil
}

func (l *Local) InCheck() bool {
	return l.lastApplied != nil && l.lastApplied.HasTag(nchess.Check)
}

func (l *Local) IsCheckmate() bool {
	return l.game.Method() == nchess.Checkmate
}

// IsStalemate reports any drawn outcome: stalemate proper, plus the automatic
// draws the rules library detects (insufficient material, repetition).
func (l *Local) IsStalemate() bool {
	return l.game.Outcome() == nchess.Draw
}

func (l *Local) Close() error { return nil }

func (l *Local) LastMove() string { return l.lastLabel }

func (l *Local) Captured() (byWhite, byBlack string) {
	return string(l.capturedBy[nchess.White]), string(l.capturedBy[nchess.Black])
}

func (l *Local) MovesUCI() []string {
	moves := l.game.Moves()
	out := make([]string, 0, len(moves))
	for _, mv := range moves {
		out = append(out, mv.String())
	}
	return out
}

func (l *Local) PGN() string { return l.game.String() }

func (l *Local) apply(mv *nchess.Move) error {
	pos := l.game.Position()
	mover := pos.Turn()
	var captured nchess.Piece
	if mv.HasTag(nchess.Capture) || mv.HasTag(nchess.EnPassant) {
		captureSquare := mv.S2()
		if mv.HasTag(nchess.EnPassant) {
			file := mv.S2().File()
			rank := mv.S2().Rank()
			if mover == nchess.White {
				captureSquare = nchess.NewSquare(file, rank-1)
			} else {
				captureSquare = nchess.NewSquare(file, rank+1)
			}
		}
		captured = pos.Board().Piece(captureSquare)
	}
	if err := l.game.Move(mv, nil); err != nil {
		return err
	}
	if captured != nchess.NoPiece {
		l.capturedBy[mover] = append(l.capturedBy[mover], pieceLetter(captured))
	}
	l.lastApplied = mv
	return nil
}

func pieceLetter(p nchess.Piece) byte {
	var c byte
	switch p.Type() {
	case nchess.Pawn:
		c = 'P'
	case nchess.Knight:
		c = 'N'
	case nchess.Bishop:
		c = 'B'
	case nchess.Rook:
		c = 'R'
	case nchess.Queen:
		c = 'Q'
	case nchess.King:
		c = 'K'
	default:
		return EmptySquare
	}
	if p.Color() == nchess.Black {
		c += 'a' - 'A'
	}
	return c
}
