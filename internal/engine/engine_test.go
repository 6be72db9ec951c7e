package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// fakeTerm hands out keys sent on keys and records output.
// Closing keys makes ReadKey report io.EOF.
type fakeTerm struct {
	keys    chan core.Key
	bounds  core.Bounds
	sizeErr error
	readErr error

	mu  sync.Mutex
	out bytes.Buffer
}

func newFakeTerm(w, h int) *fakeTerm {
	return &fakeTerm{
		keys:   make(chan core.Key),
		bounds: core.NewBounds(w, h),
	}
}

func (f *fakeTerm) ReadKey() (core.Key, error) {
	if f.readErr != nil {
		return core.Key{}, f.readErr
	}
	k, ok := <-f.keys
	if !ok {
		return core.Key{}, io.EOF
	}
	return k, nil
}

func (f *fakeTerm) Size() (core.Bounds, error) {
	if f.sizeErr != nil {
		return core.Bounds{}, f.sizeErr
	}
	return f.bounds, nil
}

func (f *fakeTerm) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Write(p)
}

func (f *fakeTerm) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.String()
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickPeriod = time.Millisecond
	cfg.GracePeriod = 0
	cfg.Seed = 1
	return cfg
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

type runOutcome struct {
	res Result
	err error
}

func startRun(ctx context.Context, e *Engine) <-chan runOutcome {
	done := make(chan runOutcome, 1)
	go func() {
		res, err := e.Run(ctx)
		done <- runOutcome{res, err}
	}()
	return done
}

func awaitRun(t *testing.T, done <-chan runOutcome) runOutcome {
	t.Helper()
	select {
	case out := <-done:
		return out
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
		return runOutcome{}
	}
}

func TestRunQuitKey(t *testing.T) {
	ft := newFakeTerm(20, 10)
	e := New(ft, testConfig(), nil)
	done := startRun(context.Background(), e)

	ft.keys <- core.Key{'q'}
	waitFor(t, "exit flag", e.World().Exiting)
	close(ft.keys)

	out := awaitRun(t, done)
	if out.err != nil {
		t.Fatalf("Run() failed: %v", out.err)
	}
	if out.res.Length != 2 {
		t.Errorf("Length = %d, expected 2", out.res.Length)
	}
	if !strings.Contains(ft.Output(), tui.ClearHome+"length of the snake: 2") {
		t.Errorf("Summary not printed, output tail %q", tail(ft.Output()))
	}
	if !strings.HasSuffix(ft.Output(), tui.ClearHome) {
		t.Error("Screen should be cleared at shutdown")
	}
}

func TestRunCollisionEndsGame(t *testing.T) {
	ft := newFakeTerm(10, 10)
	e := New(ft, testConfig(), nil)
	done := startRun(context.Background(), e)

	// Head starts at (2,2); moving left hits the inset column.
	ft.keys <- core.Key{'a'}
	waitFor(t, "collision", e.World().Exiting)

	// Any key after game over lets the reader notice the flag.
	ft.keys <- core.Key{'x'}

	out := awaitRun(t, done)
	if out.err != nil {
		t.Fatalf("Run() failed: %v", out.err)
	}
	if out.res.Length != 2 {
		t.Errorf("Length = %d, expected 2", out.res.Length)
	}
	if !strings.Contains(ft.Output(), "length of the snake: 2") {
		t.Errorf("Summary not printed, output tail %q", tail(ft.Output()))
	}
}

func TestRunRendersFrames(t *testing.T) {
	ft := newFakeTerm(8, 6)
	e := New(ft, testConfig(), nil)
	done := startRun(context.Background(), e)

	waitFor(t, "first frame", func() bool {
		return strings.Contains(ft.Output(), tui.ClearHome+"########\r\n")
	})
	close(ft.keys)

	if out := awaitRun(t, done); out.err != nil {
		t.Fatalf("Run() failed: %v", out.err)
	}
}

func TestRunReadErrorPropagates(t *testing.T) {
	ft := newFakeTerm(20, 10)
	ft.readErr = errors.New("device gone")
	e := New(ft, testConfig(), nil)

	out := awaitRun(t, startRun(context.Background(), e))

	if !errors.Is(out.err, ft.readErr) {
		t.Errorf("Run() error = %v, expected wrapped %v", out.err, ft.readErr)
	}
	if !e.World().Exiting() {
		t.Error("Read failure should end the run")
	}
}

func TestRunSizeErrorPropagates(t *testing.T) {
	ft := newFakeTerm(20, 10)
	ft.sizeErr = errors.New("no tty")
	e := New(ft, testConfig(), nil)
	done := startRun(context.Background(), e)

	waitFor(t, "exit flag", e.World().Exiting)
	close(ft.keys)

	out := awaitRun(t, done)
	if !errors.Is(out.err, ft.sizeErr) {
		t.Errorf("Run() error = %v, expected wrapped %v", out.err, ft.sizeErr)
	}
}

func TestRunContextCancelQuits(t *testing.T) {
	ft := newFakeTerm(20, 10)
	e := New(ft, testConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := startRun(ctx, e)

	cancel()
	waitFor(t, "exit flag", e.World().Exiting)
	close(ft.keys)

	out := awaitRun(t, done)
	if out.err != nil {
		t.Fatalf("Run() failed: %v", out.err)
	}
	if !strings.Contains(ft.Output(), "length of the snake: 2") {
		t.Error("Cancel should print the summary")
	}
}

func TestHandleKeyChangesDirection(t *testing.T) {
	ft := newFakeTerm(20, 10)
	e := New(ft, testConfig(), nil)

	if err := e.handleKey(core.Key{'d'}); err != nil {
		t.Fatalf("handleKey() failed: %v", err)
	}
	var dir snake.Direction
	e.World().Update(func(s *snake.Snake, _ *atomic.Bool) { dir = s.Direction() })
	if dir != snake.DirRight {
		t.Errorf("Direction = %v, expected right", dir)
	}

	// Reversal is rejected.
	if err := e.handleKey(core.Key{0x1b, '[', 'D'}); err != nil {
		t.Fatalf("handleKey() failed: %v", err)
	}
	e.World().Update(func(s *snake.Snake, _ *atomic.Bool) { dir = s.Direction() })
	if dir != snake.DirRight {
		t.Errorf("Direction after reversal = %v, expected right", dir)
	}

	// Unknown keys do nothing.
	if err := e.handleKey(core.Key{'z'}); err != nil {
		t.Fatalf("handleKey() failed: %v", err)
	}
	if e.World().Exiting() {
		t.Error("Unknown key should not end the run")
	}
}

func TestReadInputBackpressure(t *testing.T) {
	ft := newFakeTerm(20, 10)
	e := New(ft, testConfig(), nil)
	keys := make(chan core.Key, 1)
	errc := make(chan error, 1)
	go func() { errc <- e.readInput(keys) }()

	ft.keys <- core.Key{'w'}
	ft.keys <- core.Key{'s'} // now blocked sending 's' behind unconsumed 'w'

	select {
	case ft.keys <- core.Key{'d'}:
		t.Fatal("Reader accepted a third key while the channel was full")
	case <-time.After(50 * time.Millisecond):
	}

	got := []byte{(<-keys)[0], (<-keys)[0]}
	ft.keys <- core.Key{'d'}
	got = append(got, (<-keys)[0])

	if string(got) != "wsd" {
		t.Errorf("Keys arrived as %q, expected %q", got, "wsd")
	}

	close(ft.keys)
	if _, ok := <-keys; ok {
		t.Error("keys should be closed after EOF")
	}
	if err := <-errc; err != nil {
		t.Errorf("readInput() error = %v, expected nil on EOF", err)
	}
	if !e.World().Exiting() {
		t.Error("EOF should end the run")
	}
}

func TestReadInputStopsWhenExiting(t *testing.T) {
	ft := newFakeTerm(20, 10)
	e := New(ft, testConfig(), nil)
	e.World().Stop()

	keys := make(chan core.Key, 1)
	if err := e.readInput(keys); err != nil {
		t.Fatalf("readInput() failed: %v", err)
	}
	if _, ok := <-keys; ok {
		t.Error("keys should be closed without reading")
	}
}

func TestWorldStopOnce(t *testing.T) {
	w := NewWorld(snake.New())

	if !w.Stop() {
		t.Error("First Stop should flip the flag")
	}
	if w.Stop() {
		t.Error("Second Stop should report no transition")
	}
	if !w.Exiting() {
		t.Error("Flag should stay set")
	}
}

func tail(s string) string {
	const n = 200
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
