package cardfeed

import "github.com/Zachkp/portfolio/internal/tilt"

// surface is the client-reported card size.
type surface struct {
	width, height float64
}

func (s *surface) Size() (float64, float64) {
	return s.width, s.height
}

type session struct {
	loop    *tilt.FrameLoop
	surface *surface
	card    *tilt.Card
	focused bool

	last    tilt.Vars
	dirty   bool
	emitted Frame
}

func newSession(cfg tilt.CardConfig) *session {
	s := &session{
		loop:    tilt.NewFrameLoop(0),
		surface: &surface{},
	}
	s.card = tilt.NewCard(s.loop, s.surface, cfg, tilt.Options{
		Focused: func() bool { return s.focused },
		Publish: func(v tilt.Vars) {
			s.last = v
			s.dirty = true
		},
	})
	return s
}

func (s *session) apply(msg Message) {
	switch msg.Type {
	case "resize":
		first := s.surface.width == 0 && s.surface.height == 0
		s.surface.width, s.surface.height = msg.Width, msg.Height
		if first {
			s.card.Mount()
		}
	case "enter":
		s.card.PointerEnter(tilt.PointerEvent{PointerType: msg.PointerType, X: msg.X, Y: msg.Y})
	case "move":
		s.card.PointerMove(tilt.PointerEvent{PointerType: msg.PointerType, X: msg.X, Y: msg.Y})
	case "leave":
		s.card.PointerLeave()
	case "orient":
		s.card.Orientation(msg.Beta, msg.Gamma)
	case "focus":
		s.focused = msg.Focused
	}
}

// take returns the frame to send, if anything visible changed.
func (s *session) take() (Frame, bool) {
	frame := Frame{
		Vars:     s.last,
		Active:   s.card.Active(),
		Entering: s.card.Entering(),
	}
	if !s.dirty && frame.Active == s.emitted.Active && frame.Entering == s.emitted.Entering {
		return Frame{}, false
	}
	s.dirty = false
	frame.CSS = frame.Vars.Properties()
	s.emitted = frame
	return frame, true
}
