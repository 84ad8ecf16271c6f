package minigame

import (
	"log"
	"math/rand"
)

// Testable random function
var RandIntn = rand.Intn

const (
	GridSize      = 6
	StartingMoves = 10
	WinScore      = 15
	minRun        = 3
)

// Beans are the tile kinds on the board
var Beans = []string{"🍎", "🍊", "🍋", "🍇", "🍓", "🍑"}

// Cell addresses one tile
type Cell struct {
	Row, Col int
}

// Adjacent reports whether two cells share an edge
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := absInt(c.Row-o.Row), absInt(c.Col-o.Col)
	return dr+dc == 1
}

func (c Cell) inBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// Grid is the board, row-major. An empty string is a cleared tile.
type Grid [GridSize][GridSize]string

func randomBean() string {
	return Beans[RandIntn(len(Beans))]
}

// NewGrid fills a board with random beans
func NewGrid() Grid {
	var g Grid
	for row := range g {
		for col := range g[row] {
			g[row][col] = randomBean()
		}
	}
	return g
}

// findMatches marks every tile that belongs to a horizontal or vertical run of three or more
func findMatches(g Grid) [GridSize][GridSize]bool {
	var marked [GridSize][GridSize]bool
	for row := 0; row < GridSize; row++ {
		for col := 0; col <= GridSize-minRun; col++ {
			bean := g[row][col]
			if bean != "" && bean == g[row][col+1] && bean == g[row][col+2] {
				marked[row][col], marked[row][col+1], marked[row][col+2] = true, true, true
			}
		}
	}
	for row := 0; row <= GridSize-minRun; row++ {
		for col := 0; col < GridSize; col++ {
			bean := g[row][col]
			if bean != "" && bean == g[row+1][col] && bean == g[row+2][col] {
				marked[row][col], marked[row+1][col], marked[row+2][col] = true, true, true
			}
		}
	}
	return marked
}

// resolve clears matched tiles, drops the rest down and refills from the top.
// It returns the number of tiles cleared. Only one pass is made; runs formed
// by the refill stay on the board.
func resolve(g *Grid) int {
	marked := findMatches(*g)
	cleared := 0
	for row := range marked {
		for col := range marked[row] {
			if marked[row][col] {
				g[row][col] = ""
				cleared++
			}
		}
	}
	if cleared == 0 {
		return 0
	}

	for col := 0; col < GridSize; col++ {
		empty := GridSize - 1
		for row := GridSize - 1; row >= 0; row-- {
			if g[row][col] == "" {
				continue
			}
			if row != empty {
				g[empty][col] = g[row][col]
				g[row][col] = ""
			}
			empty--
		}
		for row := empty; row >= 0; row-- {
			g[row][col] = randomBean()
		}
	}
	return cleared
}

// Phase is where a round is in its lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseEnded
)

// Game is one round of Jelly Bean Match
type Game struct {
	Grid     Grid
	Score    int
	Moves    int
	Selected *Cell
	Phase    Phase
}

// NewGame returns a round waiting to start
func NewGame() *Game {
	return &Game{Grid: NewGrid(), Moves: StartingMoves}
}

// Start deals a fresh board and begins play
func (g *Game) Start() {
	g.Grid = NewGrid()
	g.Score = 0
	g.Moves = StartingMoves
	g.Selected = nil
	g.Phase = PhasePlaying
}

// Won reports whether the score reached the target
func (g *Game) Won() bool {
	return g.Score >= WinScore
}

// Select handles a tap on a cell: the first tap selects, a tap on an adjacent
// cell swaps, anything else clears the selection.
func (g *Game) Select(c Cell) {
	if g.Phase != PhasePlaying || !c.inBounds() {
		return
	}
	if g.Selected == nil {
		g.Selected = &c
		return
	}
	from := *g.Selected
	g.Selected = nil
	if from.Adjacent(c) {
		g.swap(from, c)
	}
}

// swap exchanges two tiles and spends a move. A swap that makes no run is undone.
func (g *Game) swap(a, b Cell) {
	g.Grid[a.Row][a.Col], g.Grid[b.Row][b.Col] = g.Grid[b.Row][b.Col], g.Grid[a.Row][a.Col]
	if cleared := resolve(&g.Grid); cleared > 0 {
		g.Score += cleared
	} else {
		g.Grid[a.Row][a.Col], g.Grid[b.Row][b.Col] = g.Grid[b.Row][b.Col], g.Grid[a.Row][a.Col]
	}

	g.Moves--
	if g.Moves <= 0 {
		g.Phase = PhaseEnded
		log.Printf("Jelly Bean Match ended: score %d, won: %t", g.Score, g.Won())
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
