package model

import (
	"crypto/md5"
	"fmt"
)

// historyLength bounds how many recent states are kept for cycle detection
const historyLength = 5

// GetGridHash returns an efficient MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to the history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historyLength {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a static state or a short cycle
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()

	// Check for static state and period-2/period-3 cycles
	for back := 1; back <= 3; back++ {
		if g.history[len(g.history)-back] == currentHash {
			return true
		}
	}

	return false
}

// InjectRandomLife sets up to count random cells alive to break stagnation
func (g *Grid) InjectRandomLife(count int) {
	for range count {
		r := g.rng.Intn(g.rows)
		c := g.rng.Intn(g.cols)
		g.cells[r][c] = true
	}
}
