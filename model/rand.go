package model

import (
	"math/rand"
	"time"
)

// newClockSeededRand returns a source for grids that don't care about
// reproducibility
func newClockSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// newSeededRand returns a deterministic source for reproducible runs
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
