package archive

import (
	"time"

	"github.com/google/uuid"

	"github.com/kapu/chessdesk/internal/match"
)

// Record is one finished match as stored in the archive.
type Record struct {
	ID         string
	Preset     string
	Result     string
	Method     string
	MovesUCI   []string
	PGN        string
	WhiteThink time.Duration
	BlackThink time.Duration
	StartedAt  time.Time
	EndedAt    time.Time
}

// NewRecord converts a finished match into an archive record with a fresh id.
func NewRecord(res match.Result) *Record {
	result, method := outcome(res.Status)
	return &Record{
		ID:         uuid.NewString(),
		Preset:     res.Preset,
		Result:     result,
		Method:     method,
		MovesUCI:   append([]string(nil), res.MovesUCI...),
		PGN:        res.PGN,
		WhiteThink: res.WhiteThink,
		BlackThink: res.BlackThink,
		StartedAt:  res.StartedAt,
		EndedAt:    res.EndedAt,
	}
}

func outcome(st match.MatchStatus) (result, method string) {
	switch st.Kind {
	case match.StatusCheckmate:
		if st.Side == match.White {
			return "1-0", "checkmate"
		}
		return "0-1", "checkmate"
	case match.StatusStalemate:
		return "1/2-1/2", "stalemate"
	default:
		return "*", "unfinished"
	}
}
