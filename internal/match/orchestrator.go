package match

import (
	"time"

	"go.uber.org/zap"

	"github.com/kapu/chessdesk/internal/engine"
)

// State is the orchestrator's phase. GameOver and Failed are terminal; a
// fresh match needs a fresh Orchestrator.
type State int

const (
	StateHumanTurn State = iota
	StateAITurn
	StateGameOver
	StateFailed
)

// Result summarizes a finished match for archiving.
type Result struct {
	Status     MatchStatus
	Preset     string
	WhiteThink time.Duration
	BlackThink time.Duration
	MovesUCI   []string
	PGN        string
	StartedAt  time.Time
	EndedAt    time.Time
}

// FrameState is everything the render loop needs for one frame. All values
// are copies; nothing in here aliases state the compute worker may touch.
type FrameState struct {
	Board         Snapshot
	Selected      *Square
	Targets       []Square
	WhiteElapsed  time.Duration
	BlackElapsed  time.Duration
	Status        MatchStatus
	State         State
	Err           error
	LastMove      string
	CapturedWhite string
	CapturedBlack string
}

type Config struct {
	HumanSide  Color
	Preset     string
	Logger     *zap.Logger
	OnGameOver func(Result)
}

// Orchestrator drives turn alternation between the human and the engine. All
// methods run on the UI goroutine; the only other goroutine involved is the
// Computer's worker, reached exclusively through Submit/Poll.
type Orchestrator struct {
	eng    engine.Engine
	clock  *Clock
	sel    *MoveSelector
	comp   *Computer
	snap   Snapshot
	state  State
	status MatchStatus

	lastMove string
	capWhite string
	capBlack string

	pending   *Handle
	humanSide Color
	failure   error
	preset    string
	startedAt time.Time
	onOver    func(Result)
	logger    *zap.Logger
}

func New(eng engine.Engine, cfg Config, now time.Time) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &Orchestrator{
		eng:       eng,
		clock:     NewClock(),
		sel:       NewMoveSelector(),
		comp:      NewComputer(eng, logger),
		state:     StateHumanTurn,
		humanSide: cfg.HumanSide,
		preset:    cfg.Preset,
		startedAt: now,
		onOver:    cfg.OnGameOver,
		logger:    logger,
	}
	o.refreshView()
	// White moves first. When the human plays black the engine opens.
	o.clock.Start(White, now)
	if o.humanSide != White {
		o.submitAI(now)
	}
	return o
}

// PointerDown feeds one board-square press into the move selector. Ignored
// outside the human's turn, so input freezes deterministically on GameOver,
// Failed and while the engine is thinking.
func (o *Orchestrator) PointerDown(sq Square, now time.Time) {
	if o.state != StateHumanTurn || !sq.Valid() {
		return
	}
	if !o.sel.Selecting() {
		o.sel.Select(sq, o.eng.LegalMoves())
		return
	}
	move, ok := o.sel.Complete(sq)
	if !ok {
		return
	}
	if !o.eng.PlayerMove(move) {
		o.logger.Debug("move rejected", zap.String("move", move))
		return
	}
	o.logger.Info("player move", zap.String("move", move))
	o.advance(o.humanSide, now)
}

// Tick polls the in-flight AI computation and refreshes the snapshot while
// no computation holds it frozen. Call once per frame.
func (o *Orchestrator) Tick(now time.Time) {
	switch o.state {
	case StateHumanTurn:
		o.refreshView()
	case StateAITurn:
		res, done := o.comp.Poll(o.pending)
		if !done {
			return
		}
		o.pending = nil
		aiSide := o.humanSide.Other()
		if res.Err != nil {
			o.clock.Stop(aiSide, now)
			o.fail(res.Err)
			return
		}
		o.logger.Info("ai move", zap.String("move", res.Move))
		o.advance(aiSide, now)
	}
}

// advance runs the ordered turn-boundary side effects after mover's move was
// applied: clocks hand over, the snapshot refreshes, the status recomputes,
// and either the match ends or the other party is put on the clock.
func (o *Orchestrator) advance(mover Color, now time.Time) {
	next := mover.Other()
	o.clock.Stop(mover, now)
	o.clock.Start(next, now)
	o.refreshView()
	o.status = o.recomputeStatus(mover)
	if o.status.Terminal() {
		o.clock.Stop(next, now)
		o.finish(now)
		return
	}
	if next == o.humanSide {
		o.state = StateHumanTurn
		return
	}
	o.submitAI(now)
}

// refreshView copies everything Frame reads out of the engine. Never called
// while a computation is in flight, so the view stays frozen for the whole
// think and the engine is only ever touched from one goroutine at a time.
func (o *Orchestrator) refreshView() {
	o.snap = SnapshotFromBoard(o.eng.Board64())
	if a, ok := o.eng.(engine.Annotator); ok {
		o.lastMove = a.LastMove()
		o.capWhite, o.capBlack = a.Captured()
	}
}

func (o *Orchestrator) submitAI(now time.Time) {
	// Stale highlights from the human's turn would linger through the
	// engine's whole think; drop them before freezing the snapshot.
	o.sel.Reset()
	h, err := o.comp.Submit()
	if err != nil {
		o.clock.Stop(o.humanSide.Other(), now)
		o.fail(err)
		return
	}
	o.pending = h
	o.state = StateAITurn
}

func (o *Orchestrator) recomputeStatus(mover Color) MatchStatus {
	switch {
	case o.eng.IsCheckmate():
		return MatchStatus{Kind: StatusCheckmate, Side: mover}
	case o.eng.IsStalemate():
		return MatchStatus{Kind: StatusStalemate}
	case o.eng.InCheck():
		return MatchStatus{Kind: StatusCheck, Side: mover.Other()}
	default:
		return MatchStatus{Kind: StatusInProgress}
	}
}

func (o *Orchestrator) finish(now time.Time) {
	o.state = StateGameOver
	o.sel.Reset()
	o.logger.Info("match over",
		zap.String("status", o.status.String()),
		zap.Duration("white_think", o.clock.Elapsed(White, now)),
		zap.Duration("black_think", o.clock.Elapsed(Black, now)),
	)
	if o.onOver == nil {
		return
	}
	res := Result{
		Status:     o.status,
		Preset:     o.preset,
		WhiteThink: o.clock.Elapsed(White, now),
		BlackThink: o.clock.Elapsed(Black, now),
		StartedAt:  o.startedAt,
		EndedAt:    now,
	}
	if t, ok := o.eng.(engine.Transcript); ok {
		res.MovesUCI = t.MovesUCI()
		res.PGN = t.PGN()
	}
	o.onOver(res)
}

func (o *Orchestrator) fail(err error) {
	o.state = StateFailed
	o.failure = err
	o.sel.Reset()
	o.logger.Error("engine failure ends match", zap.Error(err))
}

// Frame assembles the drawable state for the current tick.
func (o *Orchestrator) Frame(now time.Time) FrameState {
	fs := FrameState{
		Board:         o.snap,
		Targets:       append([]Square(nil), o.sel.Targets()...),
		WhiteElapsed:  o.clock.Elapsed(White, now),
		BlackElapsed:  o.clock.Elapsed(Black, now),
		Status:        o.status,
		State:         o.state,
		Err:           o.failure,
		LastMove:      o.lastMove,
		CapturedWhite: o.capWhite,
		CapturedBlack: o.capBlack,
	}
	if sel, ok := o.sel.Selected(); ok {
		fs.Selected = &sel
	}
	return fs
}

// Shutdown abandons any outstanding computation without waiting.
func (o *Orchestrator) Shutdown() {
	o.comp.Shutdown()
}
