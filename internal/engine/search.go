package engine

import (
	"math/rand"
	"strconv"

	nchess "github.com/corentings/chess/v2"
)

const (
	mateScore     = 100000
	scoreInfinity = 1000000000
	maxTTEntries  = 1 << 20
)

var pieceValues = map[nchess.PieceType]int{
	nchess.Pawn:   100,
	nchess.Knight: 320,
	nchess.Bishop: 330,
	nchess.Rook:   500,
	nchess.Queen:  900,
}

// transTable caches alpha-beta scores keyed by position and depth. Bounded by
// wholesale reset on overflow and on level changes.
type transTable struct {
	entries map[string]int
}

func newTransTable() *transTable {
	return &transTable{entries: make(map[string]int)}
}

func (t *transTable) reset() {
	t.entries = make(map[string]int)
}

func (t *transTable) key(pos *nchess.Position, depth int) string {
	return pos.String() + "#" + strconv.Itoa(depth)
}

func (t *transTable) get(pos *nchess.Position, depth int) (int, bool) {
	score, ok := t.entries[t.key(pos, depth)]
	return score, ok
}

func (t *transTable) put(pos *nchess.Position, depth, score int) {
	if len(t.entries) >= maxTTEntries {
		t.reset()
	}
	t.entries[t.key(pos, depth)] = score
}

// searchBestMove picks a move for the side to move in pos. Returns nil only
// when there is no legal move.
func searchBestMove(pos *nchess.Position, depth int, preset DifficultyPreset, rnd *rand.Rand, tt *transTable) *nchess.Move {
	moves := pos.ValidMoves()
	if len(moves) == 0 {
		return nil
	}

	// Low levels occasionally just play something.
	if preset.RandomMoveProb > 0 && rnd.Float64() < preset.RandomMoveProb {
		mv := moves[rnd.Intn(len(moves))]
		return &mv
	}

	best := moves[0]
	bestScore := -scoreInfinity
	for _, mv := range moves {
		score := -alphaBeta(pos.Update(&mv), depth-1, -scoreInfinity, -bestScore, tt)
		if preset.EvalNoise > 0 {
			score += rnd.Intn(2*preset.EvalNoise+1) - preset.EvalNoise
		}
		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	return &best
}

func alphaBeta(pos *nchess.Position, depth, alpha, beta int, tt *transTable) int {
	if score, ok := tt.get(pos, depth); ok {
		return score
	}

	moves := pos.ValidMoves()
	if len(moves) == 0 {
		if pos.Status() == nchess.Checkmate {
			// Subtract remaining depth so a nearer mate outranks a
			// deeper one.
			return -mateScore + depth
		}
		return 0
	}

	if depth <= 0 {
		score := evaluate(pos)
		tt.put(pos, depth, score)
		return score
	}

	bestScore := -scoreInfinity
	for _, mv := range moves {
		score := -alphaBeta(pos.Update(&mv), depth-1, -beta, -alpha, tt)
		if score > bestScore {
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			tt.put(pos, depth, beta)
			return beta
		}
	}
	tt.put(pos, depth, bestScore)
	return bestScore
}

// evaluate scores pos in centipawns from the side to move's perspective:
// material plus a small centre nudge for minor pieces and pawns.
func evaluate(pos *nchess.Position) int {
	board := pos.Board()
	score := 0
	for sq, piece := range board.SquareMap() {
		value := pieceValues[piece.Type()]
		value += centreBonus(sq, piece.Type())
		if piece.Color() == nchess.White {
			score += value
		} else {
			score -= value
		}
	}
	if pos.Turn() == nchess.Black {
		score = -score
	}
	return score
}

func centreBonus(sq nchess.Square, pt nchess.PieceType) int {
	switch pt {
	case nchess.Pawn, nchess.Knight, nchess.Bishop:
	default:
		return 0
	}
	f, r := int(sq.File()), int(sq.Rank())
	if f >= 2 && f <= 5 && r >= 2 && r <= 5 {
		if f >= 3 && f <= 4 && r >= 3 && r <= 4 {
			return 12
		}
		return 6
	}
	return 0
}

// materialDiff is the raw white-minus-black material balance in centipawns.
func materialDiff(pos *nchess.Position) int {
	diff := 0
	for _, piece := range pos.Board().SquareMap() {
		value := pieceValues[piece.Type()]
		if piece.Color() == nchess.White {
			diff += value
		} else {
			diff -= value
		}
	}
	return diff
}
