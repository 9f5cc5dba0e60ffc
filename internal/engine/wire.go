package engine

// JSON request/response frames spoken between the remote engine client and
// chessdesk-engined. One request in flight per connection.

const (
	opNew         = "new"
	opBoard64     = "board64"
	opLegalMoves  = "legalMoves"
	opPlayerMove  = "playerMove"
	opAIMove      = "aiMove"
	opInCheck     = "inCheck"
	opIsCheckmate = "isCheckmate"
	opIsStalemate = "isStalemate"
)

type wireRequest struct {
	Op    string `json:"op"`
	Move  string `json:"move,omitempty"`
	Level int    `json:"level,omitempty"`
}

type wireResponse struct {
	Board string   `json:"board,omitempty"`
	Moves []string `json:"moves,omitempty"`
	Move  string   `json:"move,omitempty"`
	Flag  bool     `json:"flag,omitempty"`
	Err   string   `json:"err,omitempty"`
}
