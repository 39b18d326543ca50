package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lifesim/go-life/model"
	"github.com/lifesim/go-life/pattern"
	"github.com/lifesim/go-life/utils"
)

// seedGrid applies the configured seeding strategy: a named pattern when one
// is set, otherwise random life at the configured density
func seedGrid(grid *model.Grid, config utils.Config) error {
	if config.Seed != 0 {
		grid.Seed(config.Seed)
	}
	if config.Pattern != "" {
		offset := model.Coord{Row: config.PatternRow, Col: config.PatternCol}
		return pattern.Place(grid, config.Pattern, offset)
	}
	return grid.Randomize(config.RandomDensity)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetRows(), grid.GetCols(), grid.CountLivingCells())
	if config.Pattern != "" {
		fmt.Printf("Seeded with pattern %q (available: %v)\n", config.Pattern, pattern.Names())
	} else {
		fmt.Printf("Seeded randomly at density %.2f\n", config.RandomDensity)
	}
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// runLoop drives the animation: render, report, step, sleep, until the
// context is cancelled or the generation limit is reached
func runLoop(
	ctx context.Context,
	grid *model.Grid,
	pool *model.GridPool,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
) error {
	var (
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for generation := 0; ; generation++ {
		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(grid.Snapshot())

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)
		switch {
		case shouldRestart && config.AutoRestart:
			fmt.Printf("Restarting due to %s...\n", restartReason)

			newGrid, err := restartGame(config, pool)
			if err != nil {
				return err
			}
			model.GridToPool(grid, pool)
			grid = newGrid
			lastRestartGen = generation
			stagnantCount = 0
		case stagnantCount >= 2 && stagnantCount < config.StagnationThreshold:
			// Inject some life to try to break the stagnation
			grid.InjectRandomLife(config.InjectionCount)
		}

		grid.Step()

		// Wait before next frame
		select {
		case <-ctx.Done():
			model.GridToPool(grid, pool)
			return ctx.Err()
		case <-time.After(config.FrameRate):
		}
	}
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetRows()*grid.GetCols()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Update history for stagnation detection
	grid.UpdateHistory()

	// Check for stagnation
	isStagnant := grid.IsStagnant()

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame builds a freshly seeded grid from the pool
func restartGame(config utils.Config, pool *model.GridPool) (*model.Grid, error) {
	fmt.Printf("\nRestarting...\n")
	time.Sleep(1 * time.Second)

	grid, err := pool.Get(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}
	if err = seedGrid(grid, config); err != nil {
		return nil, err
	}

	fmt.Printf("New life seeded! Living cells: %d\n", grid.CountLivingCells())
	time.Sleep(1 * time.Second)

	return grid, nil
}
