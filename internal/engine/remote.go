package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const remoteQueryTimeout = 10 * time.Second

// Remote adapts a chessdesk-engined websocket endpoint to the Engine
// contract. Calls are serialized on the connection; the cheap queries carry a
// short deadline while AIMove waits as long as the server searches.
type Remote struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger
}

// Dial connects to a remote engine and starts a fresh match at the given
// difficulty level.
func Dial(ctx context.Context, url string, level int, logger *zap.Logger) (*Remote, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, url, &websocket.DialOptions{
		CompressionMode: websocket.CompressionNoContextTakeover,
	})
	if err != nil {
		return nil, fmt.Errorf("dial engine %s: %w", url, err)
	}

	rootCtx, rootCancel := context.WithCancel(context.Background())
	r := &Remote{
		conn:   conn,
		ctx:    rootCtx,
		cancel: rootCancel,
		logger: logger,
	}
	if _, err := r.call(wireRequest{Op: opNew, Level: level}, remoteQueryTimeout); err != nil {
		r.Close()
		return nil, fmt.Errorf("start remote game: %w", err)
	}
	return r, nil
}

func (r *Remote) call(req wireRequest, timeout time.Duration) (wireResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := r.ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(r.ctx, timeout)
		defer cancel()
	}

	if err := wsjson.Write(ctx, r.conn, req); err != nil {
		return wireResponse{}, fmt.Errorf("write %s: %w", req.Op, err)
	}
	var resp wireResponse
	if err := wsjson.Read(ctx, r.conn, &resp); err != nil {
		return wireResponse{}, fmt.Errorf("read %s: %w", req.Op, err)
	}
	if resp.Err != "" {
		return wireResponse{}, errors.New(resp.Err)
	}
	return resp, nil
}

func (r *Remote) Board64() string {
	resp, err := r.call(wireRequest{Op: opBoard64}, remoteQueryTimeout)
	if err != nil {
		r.logger.Warn("remote board64 failed", zap.Error(err))
		return ""
	}
	return resp.Board
}

func (r *Remote) LegalMoves() []string {
	resp, err := r.call(wireRequest{Op: opLegalMoves}, remoteQueryTimeout)
	if err != nil {
		r.logger.Warn("remote legalMoves failed", zap.Error(err))
		return nil
	}
	return resp.Moves
}

func (r *Remote) PlayerMove(move string) bool {
	resp, err := r.call(wireRequest{Op: opPlayerMove, Move: move}, remoteQueryTimeout)
	if err != nil {
		r.logger.Warn("remote playerMove failed", zap.Error(err), zap.String("move", move))
		return false
	}
	return resp.Flag
}

// AIMove has no deadline of its own: the search is bounded server-side and
// the match design imposes no per-move timeout.
func (r *Remote) AIMove() (string, error) {
	resp, err := r.call(wireRequest{Op: opAIMove}, 0)
	if err != nil {
		return "", err
	}
	return resp.Move, nil
}

func (r *Remote) InCheck() bool     { return r.boolQuery(opInCheck) }
func (r *Remote) IsCheckmate() bool { return r.boolQuery(opIsCheckmate) }
func (r *Remote) IsStalemate() bool { return r.boolQuery(opIsStalemate) }

func (r *Remote) boolQuery(op string) bool {
	resp, err := r.call(wireRequest{Op: op}, remoteQueryTimeout)
	if err != nil {
		r.logger.Warn("remote status query failed", zap.Error(err), zap.String("op", op))
		return false
	}
	return resp.Flag
}

func (r *Remote) Close() error {
	r.cancel()
	return r.conn.Close(websocket.StatusNormalClosure, "client close")
}
