// Package tui implements the Bubble Tea front end: a shell screen that
// dispatches portfolio commands and a snake screen driven by a rescheduling
// tick timer.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gbrlmtts/terminal-card-shell/game"
	"github.com/gbrlmtts/terminal-card-shell/shell"
)

type mode uint8

const (
	modeShell mode = iota
	modeSnake
)

// TickMsg advances the snake game. Gen ties the message to the timer chain
// that scheduled it: after a reset or a return to the shell the generation
// is bumped and stale ticks are dropped instead of mutating state.
type TickMsg struct {
	Gen int
	At  time.Time
}

func tickCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// Model is the top-level Bubble Tea model. The zero value is not usable;
// construct with NewModel.
type Model struct {
	sh   *shell.Shell
	mode mode

	// shell screen
	lines   []string
	input   string
	histIdx int // -1 when not browsing history
	draft   string

	// snake screen
	g         *game.Game
	gen       int
	highScore int
	rng       *rand.Rand

	width    int
	quitting bool
}

// NewModel returns the initial model. highScore seeds the in-memory high
// score owned by this host; rng drives food placement (nil is
// deterministic, used in tests).
func NewModel(highScore int, rng *rand.Rand) Model {
	return Model{
		sh:        shell.New(),
		lines:     []string{bannerStyle.Render(shell.Banner())},
		histIdx:   -1,
		highScore: highScore,
		rng:       rng,
	}
}

// HighScore returns the best score seen this session.
func (m Model) HighScore() int { return m.highScore }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == modeSnake {
			return m.updateSnakeKey(msg)
		}
		return m.updateShellKey(msg)
	case TickMsg:
		return m.updateTick(msg)
	}
	return m, nil
}

func (m Model) updateShellKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.runLine()
	case "backspace":
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case "ctrl+l":
		m.lines = nil
	case "up":
		hist := m.sh.History()
		if len(hist) == 0 {
			break
		}
		if m.histIdx == -1 {
			m.draft = m.input
			m.histIdx = len(hist) - 1
		} else if m.histIdx > 0 {
			m.histIdx--
		}
		m.input = hist[m.histIdx]
	case "down":
		if m.histIdx == -1 {
			break
		}
		hist := m.sh.History()
		m.histIdx++
		if m.histIdx >= len(hist) {
			m.histIdx = -1
			m.input = m.draft
		} else {
			m.input = hist[m.histIdx]
		}
	case " ":
		m.input += " "
	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) runLine() (tea.Model, tea.Cmd) {
	line := m.input
	m.input = ""
	m.histIdx = -1
	m.draft = ""
	m.lines = append(m.lines, promptStyle.Render(prompt)+inputStyle.Render(line))

	res := m.sh.Execute(line)
	switch res.Action {
	case shell.ActionClear:
		m.lines = nil
	case shell.ActionExit:
		if res.Output != "" {
			m.lines = append(m.lines, outputStyle.Render(res.Output))
		}
		m.quitting = true
		return m, tea.Quit
	case shell.ActionSnake:
		m.mode = modeSnake
		m.g = game.New(m.rng)
		m.gen++
		return m, tickCmd(m.gen, m.g.Interval())
	default:
		if res.Output != "" {
			m.lines = append(m.lines, outputStyle.Render(res.Output))
		}
	}
	return m, nil
}

func (m Model) updateSnakeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "w":
		m.g.SetDirection(game.DirUp)
	case "down", "s":
		m.g.SetDirection(game.DirDown)
	case "left", "a":
		m.g.SetDirection(game.DirLeft)
	case "right", "d":
		m.g.SetDirection(game.DirRight)
	case " ", "p":
		m.g.TogglePause()
	case "r":
		// Restart begins a fresh timer chain; the old one goes stale.
		m.g.Reset()
		m.gen++
		return m, tickCmd(m.gen, m.g.Interval())
	case "q", "esc":
		return m.leaveSnake()
	}
	return m, nil
}

func (m Model) leaveSnake() (tea.Model, tea.Cmd) {
	score := m.g.Score()
	if m.g.Over() {
		score = m.g.Len()*game.FoodPoints - game.FoodPoints
	}
	m.lines = append(m.lines, outputStyle.Render(
		fmt.Sprintf("snake: scored %d (session high score %d)", score, m.highScore)))
	m.mode = modeShell
	m.g = nil
	m.gen++ // any tick still in flight is now stale
	return m, nil
}

func (m Model) updateTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeSnake || m.g == nil || msg.Gen != m.gen {
		return m, nil
	}

	res := m.g.Tick()
	if res.GameOver {
		if res.FinalScore > m.highScore {
			m.highScore = res.FinalScore
		}
		// No further ticks; restart ('r') starts a new chain.
		return m, nil
	}

	// Reschedule at the current interval. Interval shrinks as the score
	// grows, so the next tick always reflects the latest speed.
	return m, tickCmd(m.gen, m.g.Interval())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeSnake {
		return m.viewSnake()
	}
	return m.viewShell()
}

func (m Model) viewShell() string {
	var sb strings.Builder
	for _, l := range m.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	sb.WriteString(promptStyle.Render(prompt))
	sb.WriteString(inputStyle.Render(m.input))
	sb.WriteString("█")
	sb.WriteByte('\n')
	return sb.String()
}

func (m Model) viewSnake() string {
	snap := m.g.Snapshot()

	header := headerStyle.Render(fmt.Sprintf(
		" score %d · high %d · tick %s", snap.Score, m.highScore, m.g.Interval()))

	board := m.g.Board()
	var rows []string
	for y := 0; y < game.GridHeight; y++ {
		var row strings.Builder
		for x := 0; x < game.GridWidth; x++ {
			switch board[y][x] {
			case game.CellHead:
				row.WriteString(headCell)
			case game.CellBody:
				row.WriteString(bodyCell)
			case game.CellFood:
				row.WriteString(foodCell)
			default:
				row.WriteString(emptyCell)
			}
		}
		rows = append(rows, row.String())
	}

	status := hintStyle.Render(" arrows/wasd move · space pause · q back to shell")
	if snap.Over {
		status = overStyle.Render(" GAME OVER ") + hintStyle.Render("· r restart · q back to shell")
	} else if snap.Paused {
		status = statusStyle.Render(" PAUSED ") + hintStyle.Render("· space to resume")
	}

	return header + "\n" +
		boardStyle.Render(strings.Join(rows, "\n")) + "\n" +
		status + "\n"
}
