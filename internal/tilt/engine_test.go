package tilt

import (
	"math"
	"testing"
	"time"
)

type fixedSurface struct{ w, h float64 }

func (s fixedSurface) Size() (float64, float64) { return s.w, s.h }

func newTestEngine(opts Options) (*Engine, *FrameLoop) {
	loop := NewFrameLoop(1000)
	return NewEngine(loop, fixedSurface{w: 300, h: 400}, opts), loop
}

func TestSmoothTowardTarget(t *testing.T) {
	got := Smooth(0, 100, 0.14, 0.14)
	want := 100 * (1 - math.Exp(-1))
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Smooth = %f, want %f", got, want)
	}
	if v := Smooth(10, 100, 0, 0.14); v != 10 {
		t.Fatalf("zero dt moved current to %f", v)
	}
}

func TestEngineApproachesTargetMonotonically(t *testing.T) {
	e, loop := newTestEngine(Options{})
	e.SetImmediate(0, 0)
	e.SetTarget(200, 100)

	loop.Step(16) // first frame has dt = 0
	prev := math.Inf(1)
	for i := 0; i < 120; i++ {
		loop.Step(16)
		p := e.Current()
		d := math.Hypot(p.TX-p.X, p.TY-p.Y)
		if d > prev+1e-9 {
			t.Fatalf("frame %d: distance grew from %f to %f", i, prev, d)
		}
		if p.X > p.TX+1e-9 || p.Y > p.TY+1e-9 {
			t.Fatalf("frame %d: overshoot at (%f, %f)", i, p.X, p.Y)
		}
		prev = d
	}
	p := e.Current()
	if math.Abs(p.TX-p.X) > SettleDistance || math.Abs(p.TY-p.Y) > SettleDistance || e.Running() {
		t.Fatalf("did not settle: %+v running=%v", p, e.Running())
	}
}

func TestEngineStopsWhenSettledAndUnfocused(t *testing.T) {
	e, loop := newTestEngine(Options{})
	e.SetTarget(10, 10)
	for i := 0; i < 200 && e.Running(); i++ {
		loop.Step(16)
	}
	if e.Running() {
		t.Fatalf("engine still running after settling")
	}
	if loop.Pending() != 0 {
		t.Fatalf("pending frames = %d, want 0", loop.Pending())
	}

	e.SetTarget(50, 50)
	if !e.Running() || loop.Pending() != 1 {
		t.Fatalf("SetTarget did not restart the loop")
	}
}

func TestEngineKeepsRunningWhileFocused(t *testing.T) {
	e, loop := newTestEngine(Options{Focused: func() bool { return true }})
	e.SetTarget(0, 0)
	for i := 0; i < 100; i++ {
		loop.Step(16)
	}
	if !e.Running() {
		t.Fatalf("focused engine stopped at rest")
	}
}

func TestSetImmediateDoesNotTouchTarget(t *testing.T) {
	e, _ := newTestEngine(Options{})
	e.SetTarget(40, 30)
	e.SetImmediate(7, 9)

	got := e.Current()
	want := Position{X: 7, Y: 9, TX: 40, TY: 30}
	if got != want {
		t.Fatalf("Current = %+v, want %+v", got, want)
	}
}

func TestCancelQuiescesEngine(t *testing.T) {
	e, loop := newTestEngine(Options{})
	e.SetImmediate(0, 0)
	e.SetTarget(100, 100)
	loop.Step(16)
	loop.Step(16)

	e.Cancel()
	before := e.Current()
	if loop.Pending() != 0 {
		t.Fatalf("cancel left %d frames pending", loop.Pending())
	}
	for i := 0; i < 10; i++ {
		loop.Step(16)
	}
	if e.Current() != before {
		t.Fatalf("state changed after cancel")
	}
}

// stickyScheduler ignores cancellation so stale callbacks still fire.
type stickyScheduler struct {
	fns []func(float64)
}

func (s *stickyScheduler) RequestFrame(fn func(float64)) FrameID {
	s.fns = append(s.fns, fn)
	return FrameID(len(s.fns))
}
func (s *stickyScheduler) CancelFrame(FrameID) {}
func (s *stickyScheduler) Now() float64 { return 0 }

func TestStaleFrameAfterCancelIsNoop(t *testing.T) {
	s := &stickyScheduler{}
	published := 0
	e := NewEngine(s, fixedSurface{w: 100, h: 100}, Options{Publish: func(Vars) { published++ }})
	e.SetTarget(80, 80)
	e.Cancel()

	before := e.Current()
	for _, fn := range s.fns {
		fn(500)
	}
	if e.Current() != before || published != 0 {
		t.Fatalf("stale frame changed state: %+v published=%d", e.Current(), published)
	}
}

func TestBeginInitialUsesSlowerConstant(t *testing.T) {
	fast, fastLoop := newTestEngine(Options{})
	slow, slowLoop := newTestEngine(Options{})
	slow.BeginInitial(1200 * time.Millisecond)

	for _, e := range []*Engine{fast, slow} {
		e.SetImmediate(0, 0)
		e.SetTarget(100, 0)
	}
	for i := 0; i < 5; i++ {
		fastLoop.Step(16)
		slowLoop.Step(16)
	}
	if slow.Current().X >= fast.Current().X {
		t.Fatalf("initial phase not slower: slow=%f fast=%f", slow.Current().X, fast.Current().X)
	}
}

func TestToCenterTargetsSurfaceMidpoint(t *testing.T) {
	e, _ := newTestEngine(Options{})
	e.ToCenter()
	p := e.Current()
	if p.TX != 150 || p.TY != 200 {
		t.Fatalf("target = (%f, %f), want (150, 200)", p.TX, p.TY)
	}
}

func TestPublishDerivesVars(t *testing.T) {
	var last Vars
	e, _ := newTestEngine(Options{Publish: func(v Vars) { last = v }})
	e.SetImmediate(300, 0)
	if last.PointerX != 100 || last.PointerY != 0 {
		t.Fatalf("pointer = (%f, %f), want (100, 0)", last.PointerX, last.PointerY)
	}
	if last.RotateX != -10 || last.RotateY != -12.5 {
		t.Fatalf("rotate = (%f, %f), want (-10, -12.5)", last.RotateX, last.RotateY)
	}
}
