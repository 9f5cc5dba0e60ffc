package engine

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Server exposes the built-in engine over the wire protocol. Each websocket
// connection owns one independent game; the first frame must be "new".
type Server struct {
	logger *zap.Logger
}

func NewServer(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{logger: logger}
}

func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		conn, err := websocket.Accept(w, req, &websocket.AcceptOptions{
			CompressionMode: websocket.CompressionNoContextTakeover,
		})
		if err != nil {
			s.logger.Warn("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusInternalError, "session ended")

		s.serve(req.Context(), conn)
		conn.Close(websocket.StatusNormalClosure, "session ended")
	})
}

func (s *Server) serve(ctx context.Context, conn *websocket.Conn) {
	var game *Local
	for {
		var req wireRequest
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return
			}
			if !errors.Is(err, context.Canceled) {
				s.logger.Debug("engine session read ended", zap.Error(err))
			}
			return
		}

		resp := s.dispatch(&game, req)
		if err := wsjson.Write(ctx, conn, resp); err != nil {
			s.logger.Debug("engine session write failed", zap.Error(err))
			return
		}
	}
}

func (s *Server) dispatch(game **Local, req wireRequest) wireResponse {
	if req.Op == opNew {
		g, err := NewLocal(req.Level)
		if err != nil {
			return wireResponse{Err: err.Error()}
		}
		*game = g
		s.logger.Info("engine session started", zap.Int("level", req.Level))
		return wireResponse{Flag: true}
	}
	if *game == nil {
		return wireResponse{Err: "no game started; send op=new first"}
	}

	g := *game
	switch req.Op {
	case opBoard64:
		return wireResponse{Board: g.Board64()}
	case opLegalMoves:
		return wireResponse{Moves: g.LegalMoves()}
	case opPlayerMove:
		return wireResponse{Flag: g.PlayerMove(req.Move)}
	case opAIMove:
		mv, err := g.AIMove()
		if err != nil {
			return wireResponse{Err: err.Error()}
		}
		return wireResponse{Move: mv}
	case opInCheck:
		return wireResponse{Flag: g.InCheck()}
	case opIsCheckmate:
		return wireResponse{Flag: g.IsCheckmate()}
	case opIsStalemate:
		return wireResponse{Flag: g.IsStalemate()}
	default:
		return wireResponse{Err: "unknown op " + req.Op}
	}
}
