package tilt

import (
	"math"
	"time"
)

// Card lifecycle constants.
const (
	InitialDuration  = 1200 * time.Millisecond
	InitialXOffset   = 70
	InitialYOffset   = 60
	DeviceBetaOffset = 20
	EnterTransition  = 180 * time.Millisecond
	SettleRadius     = 0.6
)

// CardConfig selects which inputs drive a Card.
type CardConfig struct {
	EnableTilt            bool
	EnableMobileTilt      bool
	MobileTiltSensitivity float64
}

func DefaultCardConfig() CardConfig {
	return CardConfig{EnableTilt: true, MobileTiltSensitivity: 5}
}

// PointerEvent is a pointer sample in surface-local pixels.
type PointerEvent struct {
	PointerType string
	X, Y        float64
}

// Card hosts one Engine for a profile card and translates pointer and
// device-orientation input into engine targets.
type Card struct {
	cfg     CardConfig
	sched   Scheduler
	surface Surface
	engine  *Engine

	active        bool
	enteringUntil float64

	settle    FrameID
	settling  bool
	unmounted bool
}

// NewCard returns a Card. When cfg.EnableTilt is false the card accepts
// input but never animates.
func NewCard(sched Scheduler, surface Surface, cfg CardConfig, opts Options) *Card {
	if cfg.MobileTiltSensitivity == 0 {
		cfg.MobileTiltSensitivity = 5
	}
	c := &Card{cfg: cfg, sched: sched, surface: surface}
	if cfg.EnableTilt {
		c.engine = NewEngine(sched, surface, opts)
	}
	return c
}

func (c *Card) Engine() *Engine {
	return c.engine
}

// Mount places the card at its initial off-centre position and starts the
// slow reveal toward the centre.
func (c *Card) Mount() {
	if c.engine == nil {
		return
	}
	c.unmounted = false
	w, _ := c.surface.Size()
	c.engine.SetImmediate(w-InitialXOffset, InitialYOffset)
	c.engine.ToCenter()
	c.engine.BeginInitial(InitialDuration)
}

func (c *Card) PointerEnter(ev PointerEvent) {
	if c.ignore(ev) {
		return
	}
	c.cancelSettle()
	c.active = true
	c.enteringUntil = c.sched.Now() + float64(EnterTransition/time.Millisecond)
	c.engine.SetTarget(ev.X, ev.Y)
}

func (c *Card) PointerMove(ev PointerEvent) {
	if c.ignore(ev) {
		return
	}
	c.engine.SetTarget(ev.X, ev.Y)
}

// PointerLeave returns the tilt to rest. The card stays active until the
// motion has settled.
func (c *Card) PointerLeave() {
	if c.engine == nil || c.unmounted {
		return
	}
	c.engine.ToCenter()
	c.cancelSettle()
	c.settling = true
	c.settle = c.sched.RequestFrame(c.checkSettle)
}

// Orientation handles a device-orientation reading. Nil angles are
// ignored.
func (c *Card) Orientation(beta, gamma *float64) {
	if c.engine == nil || c.unmounted || !c.cfg.EnableMobileTilt {
		return
	}
	if beta == nil || gamma == nil {
		return
	}
	w, h := c.surface.Size()
	s := c.cfg.MobileTiltSensitivity
	x := clamp(w/2+*gamma*s, 0, w)
	y := clamp(h/2+(*beta-DeviceBetaOffset)*s, 0, h)
	c.engine.SetTarget(x, y)
}

// Unmount releases the settle check and the engine's frame.
func (c *Card) Unmount() {
	c.unmounted = true
	c.cancelSettle()
	if c.engine != nil {
		c.engine.Cancel()
	}
	c.enteringUntil = 0
}

func (c *Card) Active() bool {
	return c.active
}

func (c *Card) Entering() bool {
	return c.sched.Now() < c.enteringUntil
}

// touch input is left to the browser so scrolling still works
func (c *Card) ignore(ev PointerEvent) bool {
	return c.engine == nil || c.unmounted || ev.PointerType == "touch"
}

func (c *Card) checkSettle(float64) {
	if !c.settling {
		return
	}
	p := c.engine.Current()
	if math.Hypot(p.TX-p.X, p.TY-p.Y) < SettleRadius {
		c.active = false
		c.settling = false
		return
	}
	c.settle = c.sched.RequestFrame(c.checkSettle)
}

func (c *Card) cancelSettle() {
	if c.settling {
		c.sched.CancelFrame(c.settle)
	}
	c.settling = false
}
