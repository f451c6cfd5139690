// ws.go runs one snake engine per websocket connection. The browser sends
// small JSON ops (direction, pause, restart) and receives a frame after
// every tick; the tick timer is reset to the engine's current interval
// each round so speed-ups take effect immediately.

package web

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gbrlmtts/terminal-card-shell/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The page and the socket are served from the same origin; CORS is
	// open on the JSON API, so keep the socket consistent.
	CheckOrigin: func(*http.Request) bool { return true },
}

// clientOp is a message from the browser.
type clientOp struct {
	Op  string `json:"op"`  // "dir", "pause", "restart"
	Dir string `json:"dir"` // "up", "down", "left", "right" when Op is "dir"
}

// frame is one rendered game state pushed to the browser.
type frame struct {
	Score      int      `json:"score"`
	HighScore  int      `json:"high_score"`
	Paused     bool     `json:"paused"`
	Over       bool     `json:"over"`
	IntervalMs int64    `json:"interval_ms"`
	Rows       []string `json:"rows"`
}

func (s *Server) handleSnakeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	sess := &session{
		conn:   conn,
		g:      game.New(rand.New(rand.NewSource(time.Now().UnixNano()))),
		logger: s.logger.With("remote", r.RemoteAddr),
	}
	sess.run(r.Context())
}

// session is one connected snake game. The high score lives here, owned by
// the caller of the engine as the terminal UI does it, and dies with the
// connection.
type session struct {
	conn   *websocket.Conn
	logger *slog.Logger

	mu        sync.Mutex // guards g and highScore across read/tick goroutines
	g         *game.Game
	highScore int
}

func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	s.logger.Info("snake session started")
	go s.readLoop(cancel)

	// Initial frame so the board renders before the first tick lands.
	if err := s.conn.WriteJSON(s.buildFrame()); err != nil {
		return
	}

	timer := time.NewTimer(s.g.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("snake session closed", "high_score", s.highScore)
			return
		case <-timer.C:
			s.mu.Lock()
			res := s.g.Tick()
			if res.GameOver && res.FinalScore > s.highScore {
				s.highScore = res.FinalScore
			}
			iv := s.g.Interval()
			s.mu.Unlock()

			if err := s.conn.WriteJSON(s.buildFrame()); err != nil {
				s.logger.Debug("frame write failed", "err", err)
				return
			}
			timer.Reset(iv)
		}
	}
}

// readLoop applies client ops until the socket dies, then cancels the
// session so the tick loop cannot outlive the connection.
func (s *session) readLoop(cancel context.CancelFunc) {
	defer cancel()
	for {
		var op clientOp
		if err := s.conn.ReadJSON(&op); err != nil {
			return
		}

		s.mu.Lock()
		switch op.Op {
		case "dir":
			if d, ok := parseDir(op.Dir); ok {
				s.g.SetDirection(d)
			}
		case "pause":
			s.g.TogglePause()
		case "restart":
			s.g.Reset()
		}
		s.mu.Unlock()
	}
}

func parseDir(s string) (game.Direction, bool) {
	switch s {
	case "up":
		return game.DirUp, true
	case "down":
		return game.DirDown, true
	case "left":
		return game.DirLeft, true
	case "right":
		return game.DirRight, true
	default:
		return 0, false
	}
}

// buildFrame renders the board into glyph rows: '.' empty, '*' food,
// '@' head, 'o' body.
func (s *session) buildFrame() frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.g.Board()
	rows := make([]string, game.GridHeight)
	for y := 0; y < game.GridHeight; y++ {
		line := make([]byte, game.GridWidth)
		for x := 0; x < game.GridWidth; x++ {
			switch board[y][x] {
			case game.CellHead:
				line[x] = '@'
			case game.CellBody:
				line[x] = 'o'
			case game.CellFood:
				line[x] = '*'
			default:
				line[x] = '.'
			}
		}
		rows[y] = string(line)
	}

	return frame{
		Score:      s.g.Score(),
		HighScore:  s.highScore,
		Paused:     s.g.Paused(),
		Over:       s.g.Over(),
		IntervalMs: s.g.Interval().Milliseconds(),
		Rows:       rows,
	}
}
