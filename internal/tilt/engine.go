// Package tilt animates the profile card's 3D tilt. An Engine smooths a
// stream of pointer targets toward a current position once per frame and
// publishes the derived visual parameters.
//
// Engines are not safe for concurrent use. All calls, including the frame
// callbacks issued by the Scheduler, must happen on one goroutine.
package tilt

import (
	"math"
	"time"
)

// FrameID identifies a pending frame callback.
type FrameID uint64

// Scheduler issues per-frame callbacks. ts and Now are in milliseconds on
// the same clock.
type Scheduler interface {
	RequestFrame(fn func(ts float64)) FrameID
	CancelFrame(id FrameID)
	Now() float64
}

// Surface reports the measured size of the element hosting the effect.
type Surface interface {
	Size() (width, height float64)
}

// Position is the engine's current point and its target.
type Position struct {
	X, Y   float64
	TX, TY float64
}

const (
	DefaultTau     = 0.14
	InitialTau     = 0.6
	SettleDistance = 0.05
)

// Options configure an Engine. Zero values select the defaults.
type Options struct {
	Tau        float64
	InitialTau float64
	// Focused reports whether the hosting document has focus. While it
	// does, the loop keeps running even at rest.
	Focused func() bool
	// Publish receives the derived Vars each time the position changes.
	Publish func(Vars)
}

type Engine struct {
	sched   Scheduler
	surface Surface
	opts    Options

	currentX, currentY float64
	targetX, targetY   float64

	running      bool
	fresh        bool
	frame        FrameID
	hasFrame     bool
	lastTS       float64
	initialUntil float64
}

func NewEngine(sched Scheduler, surface Surface, opts Options) *Engine {
	if opts.Tau <= 0 {
		opts.Tau = DefaultTau
	}
	if opts.InitialTau <= 0 {
		opts.InitialTau = InitialTau
	}
	return &Engine{sched: sched, surface: surface, opts: opts}
}

// SetTarget records a new target point and starts the loop if idle.
func (e *Engine) SetTarget(x, y float64) {
	e.targetX = x
	e.targetY = y
	e.start()
}

// SetImmediate snaps the current position without interpolation.
func (e *Engine) SetImmediate(x, y float64) {
	e.currentX = x
	e.currentY = y
	e.publish()
}

// ToCenter targets the centre of the surface's current size.
func (e *Engine) ToCenter() {
	if e.surface == nil {
		return
	}
	w, h := e.surface.Size()
	e.SetTarget(w/2, h/2)
}

// BeginInitial uses the slower settling constant for d from now.
func (e *Engine) BeginInitial(d time.Duration) {
	e.initialUntil = e.sched.Now() + float64(d)/float64(time.Millisecond)
	e.start()
}

func (e *Engine) Current() Position {
	return Position{X: e.currentX, Y: e.currentY, TX: e.targetX, TY: e.targetY}
}

func (e *Engine) Running() bool {
	return e.running
}

// Cancel stops the loop and releases the pending frame.
func (e *Engine) Cancel() {
	if e.hasFrame {
		e.sched.CancelFrame(e.frame)
	}
	e.hasFrame = false
	e.running = false
}

func (e *Engine) start() {
	if e.running {
		return
	}
	e.running = true
	e.fresh = true
	e.request()
}

func (e *Engine) request() {
	e.frame = e.sched.RequestFrame(e.step)
	e.hasFrame = true
}

func (e *Engine) step(ts float64) {
	if !e.running {
		return
	}
	e.hasFrame = false
	if e.fresh {
		e.lastTS = ts
		e.fresh = false
	}
	dt := (ts - e.lastTS) / 1000
	e.lastTS = ts

	tau := e.opts.Tau
	if ts < e.initialUntil {
		tau = e.opts.InitialTau
	}
	e.currentX = Smooth(e.currentX, e.targetX, dt, tau)
	e.currentY = Smooth(e.currentY, e.targetY, dt, tau)
	e.publish()

	stillFar := math.Abs(e.targetX-e.currentX) > SettleDistance ||
		math.Abs(e.targetY-e.currentY) > SettleDistance
	if stillFar || e.focused() {
		e.request()
		return
	}
	e.running = false
}

func (e *Engine) focused() bool {
	return e.opts.Focused != nil && e.opts.Focused()
}

func (e *Engine) publish() {
	if e.surface == nil || e.opts.Publish == nil {
		return
	}
	w, h := e.surface.Size()
	e.opts.Publish(Derive(e.currentX, e.currentY, w, h))
}
