package match

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/kapu/chessdesk/internal/engine"
)

var (
	// ErrComputePending rejects a submission while a computation is
	// outstanding. One handle at a time, by construction.
	ErrComputePending = errors.New("ai computation already in flight")

	// ErrComputerClosed rejects submissions after Shutdown.
	ErrComputerClosed = errors.New("ai computer shut down")
)

// AIResult is what a finished computation produced: the applied move, or the
// engine failure that ends the match.
type AIResult struct {
	Move string
	Err  error
}

// Handle tracks one in-flight AI computation.
type Handle struct {
	done chan AIResult
}

// Computer runs the engine's move search on a single background worker. The
// caller polls; nothing here ever blocks the render goroutine.
type Computer struct {
	eng      engine.Engine
	jobs     chan *Handle
	quit     chan struct{}
	stopOnce sync.Once
	inFlight atomic.Bool
	logger   *zap.Logger
}

func NewComputer(eng engine.Engine, logger *zap.Logger) *Computer {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Computer{
		eng:    eng,
		jobs:   make(chan *Handle, 1),
		quit:   make(chan struct{}),
		logger: logger,
	}
	go c.worker()
	return c
}

func (c *Computer) worker() {
	for {
		select {
		case <-c.quit:
			return
		case h := <-c.jobs:
			h.done <- c.run()
		}
	}
}

func (c *Computer) run() (res AIResult) {
	defer func() {
		if r := recover(); r != nil {
			res = AIResult{Err: fmt.Errorf("engine panicked: %v", r)}
		}
	}()
	mv, err := c.eng.AIMove()
	return AIResult{Move: mv, Err: err}
}

// Submit schedules one AI computation and returns its handle. A second
// submission while one is outstanding fails with ErrComputePending.
func (c *Computer) Submit() (*Handle, error) {
	select {
	case <-c.quit:
		return nil, ErrComputerClosed
	default:
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrComputePending
	}
	h := &Handle{done: make(chan AIResult, 1)}
	c.jobs <- h
	return h, nil
}

// Poll checks the handle without blocking. ok is false while the worker is
// still searching.
func (c *Computer) Poll(h *Handle) (res AIResult, ok bool) {
	select {
	case res = <-h.done:
		c.inFlight.Store(false)
		return res, true
	default:
		return AIResult{}, false
	}
}

// Shutdown abandons any outstanding computation without waiting for it. The
// worker may still be inside the engine's search; its result lands in a
// buffered channel nobody polls again.
func (c *Computer) Shutdown() {
	c.stopOnce.Do(func() {
		close(c.quit)
		c.logger.Debug("ai computer shut down")
	})
}
