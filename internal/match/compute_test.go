package match

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeEngine is a scripted stand-in for the real engine. Tests drive it by
// mutating fields through set; AIMove blocks on gate when one is installed so
// tests can hold a computation in flight.
type fakeEngine struct {
	mu      sync.Mutex
	board   string
	legal   []string
	aiMove  string
	aiErr   error
	aiPanic bool
	gate    chan struct{}
	check   bool
	mate    bool
	stale   bool
	closed  bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		board: "rnbqkbnr" + "pppppppp" + strings.Repeat(".", 32) + "PPPPPPPP" + "RNBQKBNR",
		legal: []string{"e2e4", "e2e3", "g1f3"},
	}
}

func (f *fakeEngine) set(fn func(*fakeEngine)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeEngine) Board64() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.board
}

func (f *fakeEngine) LegalMoves() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.legal...)
}

func (f *fakeEngine) PlayerMove(move string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, mv := range f.legal {
		if mv == move {
			return true
		}
	}
	return false
}

func (f *fakeEngine) AIMove() (string, error) {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.aiPanic {
		panic("scripted engine panic")
	}
	return f.aiMove, f.aiErr
}

func (f *fakeEngine) InCheck() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.check
}

func (f *fakeEngine) IsCheckmate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mate
}

func (f *fakeEngine) IsStalemate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stale
}

func (f *fakeEngine) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func pollUntil(t *testing.T, c *Computer, h *Handle) AIResult {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if res, ok := c.Poll(h); ok {
			return res
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("computation never completed")
	return AIResult{}
}

func TestComputerSubmitAndPoll(t *testing.T) {
	fe := newFakeEngine()
	fe.set(func(f *fakeEngine) {
		f.aiMove = "e7e5"
		f.gate = make(chan struct{})
	})
	c := NewComputer(fe, nil)
	defer c.Shutdown()

	h, err := c.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, ok := c.Poll(h); ok {
		t.Fatalf("Poll reported completion while the engine was still held")
	}

	fe.mu.Lock()
	close(fe.gate)
	fe.mu.Unlock()

	res := pollUntil(t, c, h)
	if res.Err != nil || res.Move != "e7e5" {
		t.Fatalf("result = %+v, want move e7e5", res)
	}
}

func TestComputerRejectsSecondSubmit(t *testing.T) {
	fe := newFakeEngine()
	fe.set(func(f *fakeEngine) { f.gate = make(chan struct{}) })
	c := NewComputer(fe, nil)
	defer c.Shutdown()

	h, err := c.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := c.Submit(); !errors.Is(err, ErrComputePending) {
		t.Fatalf("second Submit err = %v, want ErrComputePending", err)
	}

	fe.mu.Lock()
	close(fe.gate)
	fe.mu.Unlock()
	pollUntil(t, c, h)

	if _, err := c.Submit(); err != nil {
		t.Fatalf("Submit after completion: %v", err)
	}
}

func TestComputerSurfacesEngineError(t *testing.T) {
	fe := newFakeEngine()
	wantErr := errors.New("no legal moves")
	fe.set(func(f *fakeEngine) { f.aiErr = wantErr })
	c := NewComputer(fe, nil)
	defer c.Shutdown()

	h, err := c.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res := pollUntil(t, c, h); !errors.Is(res.Err, wantErr) {
		t.Fatalf("result err = %v, want %v", res.Err, wantErr)
	}
}

func TestComputerRecoversPanic(t *testing.T) {
	fe := newFakeEngine()
	fe.set(func(f *fakeEngine) { f.aiPanic = true })
	c := NewComputer(fe, nil)
	defer c.Shutdown()

	h, err := c.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	res := pollUntil(t, c, h)
	if res.Err == nil || !strings.Contains(res.Err.Error(), "panicked") {
		t.Fatalf("result err = %v, want panic report", res.Err)
	}
}

func TestComputerShutdownRefusesWork(t *testing.T) {
	c := NewComputer(newFakeEngine(), nil)
	c.Shutdown()
	c.Shutdown()
	if _, err := c.Submit(); !errors.Is(err, ErrComputerClosed) {
		t.Fatalf("Submit after Shutdown err = %v, want ErrComputerClosed", err)
	}
}
