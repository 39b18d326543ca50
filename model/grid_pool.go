package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids so a driver that restarts many simulations can
// reuse allocations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid with the requested dimensions, validating
// them the same way NewGrid does
func (p *GridPool) Get(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[Get] rows=%d cols=%d", rows, cols)
	}
	g := p.pool.Get().(*Grid)
	g.Reset(rows, cols)
	return g, nil
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	// Clear the grid before returning to pool
	g.Clear()
	p.pool.Put(g)
}
