package model

import (
	"errors"
	"testing"
)

func TestGridPoolValidatesDimensions(t *testing.T) {
	pool := NewGridPool()
	if _, err := pool.Get(0, 10); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("pool.Get(0, 10) error = %v, expected ErrInvalidDimension", err)
	}
}

func TestGridPoolRecyclesCleanGrids(t *testing.T) {
	pool := NewGridPool()
	g, err := pool.Get(6, 6)
	if err != nil {
		t.Fatalf("pool.Get failed: %v", err)
	}
	if err = g.Populate([]Coord{{Row: 2, Col: 2}, {Row: 3, Col: 3}}); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	g.Step()
	pool.Put(g)

	recycled, err := pool.Get(4, 8)
	if err != nil {
		t.Fatalf("pool.Get failed: %v", err)
	}
	if recycled.GetRows() != 4 || recycled.GetCols() != 8 {
		t.Fatalf("recycled grid is %dx%d, expected 4x8", recycled.GetRows(), recycled.GetCols())
	}
	if got := recycled.CountLivingCells(); got != 0 {
		t.Fatalf("recycled grid carries %d living cells", got)
	}
	if got := recycled.Generation(); got != 0 {
		t.Fatalf("recycled grid carries generation %d", got)
	}
}

func TestGridToPoolHandlesNilPool(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	// Must not panic
	GridToPool(g, nil)
}
