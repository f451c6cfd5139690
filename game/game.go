// Package game implements the snake game engine behind the terminal
// portfolio's easter egg.
//
// The engine is a single finite state machine advanced by Tick. It owns the
// snake, the food, the direction, and the score; the host owns the timer
// that drives Tick and the high score. The engine is not safe for
// concurrent use; hosts serialize access (the TUI via its message loop,
// the web server via a per-session mutex).
package game

import "math/rand"

// Grid dimensions. The board is fixed-size; cells are addressed with
// (0,0) at the top-left, so DirUp decreases Y.
const (
	GridWidth  = 30
	GridHeight = 15
)

// Point is a board coordinate.
type Point struct {
	X int
	Y int
}

// offBoard is where food is parked when the snake fills the entire grid.
// It can never equal a head position produced by a move inside the grid.
var offBoard = Point{X: -1, Y: -1}

// Direction is one of the four movement directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse of this direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// CellKind classifies a board cell for rendering.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellFood
	CellHead
	CellBody
)

// Starting positions: head near the grid center, food a few cells ahead
// on the initial (rightward) path.
var (
	startHead = Point{X: GridWidth / 2, Y: GridHeight / 2}
	startFood = Point{X: GridWidth/2 + 5, Y: GridHeight / 2}
)

// Game is one run of snake. Create with New, drive with Tick.
type Game struct {
	snake   []Point // head first; no two segments overlap while alive
	food    Point
	dir     Direction // direction applied on the most recent tick
	pending Direction // requested direction, applied at the next tick
	score   int
	paused  bool
	over    bool
	ticks   uint64
	rng     *rand.Rand
}

// New returns a game in its starting state. rng drives food placement;
// nil selects a deterministic fallback, which tests rely on.
func New(rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	g.Reset()
	return g
}

// Reset reinitializes every entity to the starting state. Callable at any
// time, though hosts typically offer it only once the game is over.
func (g *Game) Reset() {
	g.snake = []Point{startHead}
	g.food = startFood
	g.dir = DirRight
	g.pending = DirRight
	g.score = 0
	g.paused = false
	g.over = false
	g.ticks = 0
}

// SetDirection records the direction for the next tick. A request for the
// exact opposite of the current direction is silently ignored so the snake
// cannot reverse into its own body. No effect once the game is over.
func (g *Game) SetDirection(d Direction) {
	if g.over {
		return
	}
	if d == g.dir.Opposite() {
		return
	}
	g.pending = d
}

// TogglePause flips the paused flag. No effect once the game is over.
func (g *Game) TogglePause() {
	if g.over {
		return
	}
	g.paused = !g.paused
}

// TickResult reports what a single Tick did, so the host can reschedule
// its timer and propagate score events.
type TickResult struct {
	Moved        bool // the snake advanced one cell
	Ate          bool // the move landed on food
	GameOver     bool // the move hit a wall or the snake itself
	FinalScore   int  // valid when GameOver; len(snake)*10 - 10
	SpeedChanged bool // the tick interval derived from the score changed
}

// Tick advances the simulation one step. It is a no-op while paused or
// after game over, so a stray timer callback cannot corrupt state.
//
// The transition order within one tick is fixed: apply the pending
// direction, compute the new head, then check wall, self, and food
// collisions in that order.
func (g *Game) Tick() TickResult {
	if g.over || g.paused {
		return TickResult{}
	}
	g.ticks++
	g.dir = g.pending

	dx, dy := g.dir.Delta()
	head := g.snake[0]
	newHead := Point{X: head.X + dx, Y: head.Y + dy}

	// Wall collision. Snake and food are left untouched on the over
	// transition; only the flag flips and the final score is reported.
	if newHead.X < 0 || newHead.X >= GridWidth || newHead.Y < 0 || newHead.Y >= GridHeight {
		return g.endRun()
	}

	// Self collision, checked against the pre-move body including the
	// current head and the tail (the tail has not vacated yet this tick).
	for _, p := range g.snake {
		if p == newHead {
			return g.endRun()
		}
	}

	if newHead == g.food {
		// Grow: prepend without dropping the tail.
		g.snake = append([]Point{newHead}, g.snake...)
		before := Interval(g.score)
		g.score += FoodPoints
		g.food = g.spawnFood()
		return TickResult{
			Moved:        true,
			Ate:          true,
			SpeedChanged: Interval(g.score) != before,
		}
	}

	// Normal move: prepend the head, drop the tail.
	g.snake = append([]Point{newHead}, g.snake[:len(g.snake)-1]...)
	return TickResult{Moved: true}
}

// endRun flips the over flag and reports the final score. The length-based
// formula matches the incrementally tracked score: a snake of length L has
// eaten L-1 food at 10 points each.
func (g *Game) endRun() TickResult {
	g.over = true
	return TickResult{
		GameOver:   true,
		FinalScore: len(g.snake)*FoodPoints - FoodPoints,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Over reports whether the run has ended.
func (g *Game) Over() bool { return g.over }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }

// Len returns the snake length in segments.
func (g *Game) Len() int { return len(g.snake) }

// Head returns the current head coordinate.
func (g *Game) Head() Point { return g.snake[0] }

// Food returns the current food coordinate.
func (g *Game) Food() Point { return g.food }

// Body returns a copy of the snake body, head first.
func (g *Game) Body() []Point {
	out := make([]Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// CellAt classifies a single cell. Pure projection of current state.
func (g *Game) CellAt(p Point) CellKind {
	if p == g.food {
		return CellFood
	}
	for i, s := range g.snake {
		if s == p {
			if i == 0 {
				return CellHead
			}
			return CellBody
		}
	}
	return CellEmpty
}

// Board returns the full grid classification, row by row. Pure projection;
// recomputable at any time without mutating state.
func (g *Game) Board() [][]CellKind {
	rows := make([][]CellKind, GridHeight)
	for y := range rows {
		rows[y] = make([]CellKind, GridWidth)
	}
	if g.food.Y >= 0 && g.food.Y < GridHeight && g.food.X >= 0 && g.food.X < GridWidth {
		rows[g.food.Y][g.food.X] = CellFood
	}
	for i, s := range g.snake {
		if i == 0 {
			rows[s.Y][s.X] = CellHead
		} else {
			rows[s.Y][s.X] = CellBody
		}
	}
	return rows
}

// Snapshot captures the observable game state for frames and tests.
type Snapshot struct {
	Ticks    uint64
	Score    int
	SnakeLen int
	Head     Point
	Dir      Direction
	Food     Point
	Paused   bool
	Over     bool
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:    g.ticks,
		Score:    g.score,
		SnakeLen: len(g.snake),
		Head:     g.snake[0],
		Dir:      g.dir,
		Food:     g.food,
		Paused:   g.paused,
		Over:     g.over,
	}
}
