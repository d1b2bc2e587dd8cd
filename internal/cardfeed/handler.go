// Package cardfeed streams profile-card tilt frames over a WebSocket.
// Each connection hosts its own tilt.Card, fed by the client's pointer,
// orientation and resize messages and driven by a frame ticker.
package cardfeed

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Zachkp/portfolio/internal/tilt"
)

const (
	DefaultFrameInterval = 16 * time.Millisecond

	readLimit    = 4096
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
)

// Message is a client event.
type Message struct {
	Type        string   `json:"type"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	PointerType string   `json:"pointerType"`
	Beta        *float64 `json:"beta"`
	Gamma       *float64 `json:"gamma"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Focused     bool     `json:"focused"`
}

// Frame is sent whenever the card's tilt changes.
type Frame struct {
	Vars     tilt.Vars         `json:"vars"`
	CSS      map[string]string `json:"css"`
	Active   bool              `json:"active"`
	Entering bool              `json:"entering"`
}

type HandlerConfig struct {
	Logger        *log.Logger
	FrameInterval time.Duration
	Card          tilt.CardConfig
}

type Handler struct {
	logger   *log.Logger
	interval time.Duration
	card     tilt.CardConfig
	upgrader websocket.Upgrader
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Handler{
		logger:   logger,
		interval: interval,
		card:     cfg.Card,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("card feed upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	inbox := make(chan Message, 32)
	done := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)
	go h.readLoop(conn, inbox, done, quit)

	// the card mounts on the first resize, once its size is known
	s := newSession(h.card)
	defer s.card.Unmount()
	h.run(conn, s, inbox, done)
}

func (h *Handler) readLoop(conn *websocket.Conn, inbox chan<- Message, done chan<- struct{}, quit <-chan struct{}) {
	defer close(done)
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("discarding malformed card message: %v", err)
			continue
		}
		select {
		case inbox <- msg:
		case <-quit:
			return
		}
	}
}

// run owns the card. Every engine call happens on this goroutine.
func (h *Handler) run(conn *websocket.Conn, s *session, inbox <-chan Message, done <-chan struct{}) {
	start := time.Now()
	frames := time.NewTicker(h.interval)
	defer frames.Stop()
	pings := time.NewTicker(pingInterval)
	defer pings.Stop()

	flush := func() bool {
		frame, ok := s.take()
		if !ok {
			return true
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(frame) == nil
	}

	for {
		select {
		case <-done:
			return
		case msg := <-inbox:
			s.apply(msg)
		case now := <-frames.C:
			s.loop.Advance(float64(now.Sub(start)) / float64(time.Millisecond))
		case <-pings.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
			continue
		}
		if !flush() {
			return
		}
	}
}
