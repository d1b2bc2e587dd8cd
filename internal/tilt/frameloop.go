package tilt

// FrameLoop is a Scheduler driven by explicit Advance calls. Callbacks
// requested while a frame runs are deferred to the next Advance.
type FrameLoop struct {
	now       float64
	next      FrameID
	pending   []queuedFrame
	cancelled map[FrameID]bool
}

type queuedFrame struct {
	id FrameID
	fn func(ts float64)
}

func NewFrameLoop(start float64) *FrameLoop {
	return &FrameLoop{now: start}
}

func (l *FrameLoop) RequestFrame(fn func(ts float64)) FrameID {
	l.next++
	l.pending = append(l.pending, queuedFrame{id: l.next, fn: fn})
	return l.next
}

func (l *FrameLoop) CancelFrame(id FrameID) {
	for i, f := range l.pending {
		if f.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	// cancelled from inside a running batch
	if l.cancelled != nil {
		l.cancelled[id] = true
	}
}

func (l *FrameLoop) Now() float64 {
	return l.now
}

// Pending reports how many callbacks wait for the next frame.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Advance moves the clock to ts and runs the callbacks queued before the
// call. It returns the number of callbacks run.
func (l *FrameLoop) Advance(ts float64) int {
	if ts > l.now {
		l.now = ts
	}
	batch := l.pending
	l.pending = nil
	l.cancelled = make(map[FrameID]bool)
	defer func() { l.cancelled = nil }()

	ran := 0
	for _, f := range batch {
		if l.cancelled[f.id] {
			continue
		}
		f.fn(l.now)
		ran++
	}
	return ran
}

// Step advances the clock by ms milliseconds.
func (l *FrameLoop) Step(ms float64) int {
	return l.Advance(l.now + ms)
}
