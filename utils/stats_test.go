package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	stats := NewStats()
	stats.Update(10, 50, 100*time.Millisecond)

	if stats.TotalGenerations != 10 {
		t.Fatalf("TotalGenerations = %d, expected 10", stats.TotalGenerations)
	}
	if stats.GenerationsPerSecond < 9.9 || stats.GenerationsPerSecond > 10.1 {
		t.Fatalf("GenerationsPerSecond = %v, expected ~10", stats.GenerationsPerSecond)
	}
	if stats.AveragePopulation != 50 {
		t.Fatalf("first AveragePopulation = %v, expected 50", stats.AveragePopulation)
	}

	// Moving average blends subsequent observations: 50*0.9 + 100*0.1
	stats.Update(11, 100, 100*time.Millisecond)
	if stats.AveragePopulation < 54.9 || stats.AveragePopulation > 55.1 {
		t.Fatalf("blended AveragePopulation = %v, expected ~55", stats.AveragePopulation)
	}
}
