package match

import "fmt"

// Color identifies a side of the board.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Square is a board coordinate: File 0..7 maps a..h, Rank 0..7 maps 1..8.
type Square struct {
	File int
	Rank int
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File <= 7 && s.Rank >= 0 && s.Rank <= 7
}

// Algebraic renders the square in algebraic notation, e.g. "e4".
func (s Square) Algebraic() string {
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare reads two characters of algebraic notation.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("malformed square %q", s)
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

// StatusKind classifies the match status recomputed after every applied move.
type StatusKind int

const (
	StatusInProgress StatusKind = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

// MatchStatus carries the kind plus the side it concerns: the checked side
// for StatusCheck, the winner for StatusCheckmate.
type MatchStatus struct {
	Kind StatusKind
	Side Color
}

func (st MatchStatus) Terminal() bool {
	return st.Kind == StatusCheckmate || st.Kind == StatusStalemate
}

func (st MatchStatus) String() string {
	switch st.Kind {
	case StatusCheck:
		return st.Side.String() + " in check"
	case StatusCheckmate:
		return "checkmate, " + st.Side.String() + " wins"
	case StatusStalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}
