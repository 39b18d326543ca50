package model

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/lifesim/go-life/rules"
)

// Coord identifies a single cell as a (row, col) pair, both zero-based.
type Coord struct {
	Row int
	Col int
}

// Grid represents the game board: a fixed rows×cols matrix of cell states.
// Dimensions never change after creation; all mutation goes through the
// documented operations.
type Grid struct {
	rows    int
	cols    int
	cells   [][]bool
	scratch [][]bool // next-generation buffer, swapped on every step

	generation int
	history    []string // recent state hashes for cycle detection

	rng *rand.Rand
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	g := &Grid{}
	g.Reset(rows, cols)
	return g, nil
}

// Reset resizes the grid and returns every cell to the dead state.
// Used by GridPool when recycling grids; dimensions are validated there.
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.generation = 0
	g.history = nil
	if g.rng == nil {
		g.rng = newClockSeededRand()
	}
	g.cells = resizeCells(g.cells, rows, cols)
	g.scratch = resizeCells(g.scratch, rows, cols)
}

// resizeCells reuses row slices where dimensions already match
func resizeCells(cells [][]bool, rows, cols int) [][]bool {
	if len(cells) != rows {
		cells = make([][]bool, rows)
	}
	for i := range cells {
		if len(cells[i]) != cols {
			cells[i] = make([]bool, cols)
		} else {
			for j := range cells[i] {
				cells[i][j] = false
			}
		}
	}
	return cells
}

// GetRows returns the number of rows in the grid
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns in the grid
func (g *Grid) GetCols() int {
	return g.cols
}

// Generation returns how many steps have run since the grid was last seeded
func (g *Grid) Generation() int {
	return g.generation
}

// inBounds reports whether the coordinate addresses a cell on this grid
func (g *Grid) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Clear kills every cell and resets the generation counter
func (g *Grid) Clear() {
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = false
		}
	}
	g.generation = 0
	g.history = nil
}

// Set sets a single cell to alive (true) or dead (false).
// The grid is left untouched if the coordinate is out of bounds.
func (g *Grid) Set(c Coord, alive bool) error {
	if !g.inBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] cell (%d,%d) outside %dx%d grid", c.Row, c.Col, g.rows, g.cols)
	}
	g.cells[c.Row][c.Col] = alive
	return nil
}

// Get returns the state of a cell. Coordinates outside the grid read as
// dead, matching the dead-border boundary policy.
func (g *Grid) Get(c Coord) bool {
	if !g.inBounds(c) {
		return false
	}
	return g.cells[c.Row][c.Col]
}

// Populate replaces the grid state: every listed coordinate becomes alive
// and all other cells are cleared. Every coordinate is validated before any
// mutation, so a failed call leaves the grid exactly as it was.
func (g *Grid) Populate(coords []Coord) error {
	for _, c := range coords {
		if !g.inBounds(c) {
			return errors.Wrapf(ErrOutOfBounds, "[Populate] cell (%d,%d) outside %dx%d grid", c.Row, c.Col, g.rows, g.cols)
		}
	}
	g.Clear()
	for _, c := range coords {
		g.cells[c.Row][c.Col] = true
	}
	return nil
}

// Randomize replaces the grid state, setting each cell alive independently
// with the given probability. Fails without mutating the grid if density is
// outside [0, 1]. Call Seed first for a reproducible result.
func (g *Grid) Randomize(density float64) error {
	if density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidParameter, "[Randomize] density %v outside [0, 1]", density)
	}
	g.Clear()
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = g.rng.Float64() < density
		}
	}
	return nil
}

// Seed re-seeds the grid's randomness source so Randomize and
// InjectRandomLife become deterministic.
func (g *Grid) Seed(seed int64) {
	g.rng = newSeededRand(seed)
}

// CountNeighbors counts living neighbors among the up to 8 surrounding
// cells. Positions beyond the edge are permanently dead: the loop bounds
// are clamped to the grid instead of wrapping around.
func (g *Grid) CountNeighbors(c Coord) int {
	count := 0

	minRow := max(0, c.Row-1)
	maxRow := min(g.rows-1, c.Row+1)
	minCol := max(0, c.Col-1)
	maxCol := min(g.cols-1, c.Col+1)

	for r := minRow; r <= maxRow; r++ {
		for col := minCol; col <= maxCol; col++ {
			if r == c.Row && col == c.Col {
				continue
			}
			if g.cells[r][col] {
				count++
			}
		}
	}

	return count
}

// Step advances the grid one generation in place and returns a snapshot of
// the result. The whole previous generation is read before any new cell is
// written: the next state is computed into a scratch buffer and swapped in,
// so partial updates never feed back into neighbor counts.
func (g *Grid) Step() [][]bool {
	for r := range g.rows {
		for c := range g.cols {
			neighbors := g.CountNeighbors(Coord{Row: r, Col: c})
			g.scratch[r][c] = rules.ApplyConwayRules(neighbors, g.cells[r][c])
		}
	}
	g.cells, g.scratch = g.scratch, g.cells
	g.generation++
	return g.Snapshot()
}

// StepN advances the grid by n generations
func (g *Grid) StepN(n int) {
	for range n {
		g.Step()
	}
}

// Snapshot returns a deep copy of the current state for display. Mutating
// the returned matrix has no effect on the grid.
func (g *Grid) Snapshot() [][]bool {
	snapshot := make([][]bool, g.rows)
	for r := range g.rows {
		snapshot[r] = make([]bool, g.cols)
		copy(snapshot[r], g.cells[r])
	}
	return snapshot
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}
