package match

import "github.com/kapu/chessdesk/internal/engine"

// Snapshot is an immutable value copy of the engine's 64-square board, rank 8
// down to rank 1, file a to h. The render loop only ever reads snapshots, so
// it can never observe the live board mid-mutation while the compute worker
// owns it.
type Snapshot [64]byte

// SnapshotFromBoard copies a Board64 string. Short or empty input (e.g. a
// failed remote query) yields empty squares rather than garbage.
func SnapshotFromBoard(board string) Snapshot {
	var s Snapshot
	for i := range s {
		if i < len(board) && board[i] != 0 {
			s[i] = board[i]
		} else {
			s[i] = engine.EmptySquare
		}
	}
	return s
}

// At returns the piece letter on sq, or engine.EmptySquare.
func (s Snapshot) At(sq Square) byte {
	if !sq.Valid() {
		return engine.EmptySquare
	}
	return s[(7-sq.Rank)*8+sq.File]
}

func (s Snapshot) Empty(sq Square) bool {
	return s.At(sq) == engine.EmptySquare
}
